package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aura/internal/domain"
)

func TestProductMatch_Empty(t *testing.T) {
	p := ProductMatch(domain.ProductFilter{})
	and, ok := p.(And)
	require.True(t, ok)
	assert.Empty(t, and)
	assert.True(t, p.Match(ProductRecord{P: &domain.Product{Title: "anything"}}))
}

func TestProductMatch_OneNodePerFilter(t *testing.T) {
	p := ProductMatch(domain.ProductFilter{
		Search:     "mac",
		CategoryID: "c1",
		SellerID:   "s1",
		Brand:      "Apple",
		ID:         "p1",
		Slug:       "macbook",
	})
	and := p.(And)
	require.Len(t, and, 6)
	assert.Equal(t, Contains{Fields: []Field{FieldTitle, FieldDescription}, Term: "mac"}, and[0])
	assert.Equal(t, Eq{Field: FieldCategoryID, Value: "c1"}, and[1])
	assert.Equal(t, IDMatch("p1"), and[4])
}

func TestProductMatch_Search(t *testing.T) {
	pred := ProductMatch(domain.ProductFilter{Search: "PRO"})
	tests := []struct {
		name string
		p    domain.Product
		want bool
	}{
		{"title", domain.Product{Title: "MacBook Pro"}, true},
		{"description", domain.Product{Title: "iPad", Description: "for professionals"}, true},
		{"none", domain.Product{Title: "AirPods", Description: "audio"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pred.Match(ProductRecord{P: &tt.p}))
		})
	}
}

func TestIDMatch_EitherIdentifier(t *testing.T) {
	pred := IDMatch("65f0c0ffee")
	assert.True(t, pred.Match(ProductRecord{P: &domain.Product{ID: "65f0c0ffee"}}))
	assert.True(t, pred.Match(ProductRecord{P: &domain.Product{ID: "legacy-1", StorageID: "65f0c0ffee"}}))
	assert.False(t, pred.Match(ProductRecord{P: &domain.Product{ID: "legacy-1", StorageID: "other"}}))
}

func TestOr_EmptyMatchesNothing(t *testing.T) {
	assert.False(t, Or{}.Match(ProductRecord{P: &domain.Product{}}))
}

func TestProductMatch_CombinedFilters(t *testing.T) {
	pred := ProductMatch(domain.ProductFilter{Search: "phone", CategoryID: "c1"})
	assert.True(t, pred.Match(ProductRecord{P: &domain.Product{Title: "iPhone", CategoryID: "c1"}}))
	assert.False(t, pred.Match(ProductRecord{P: &domain.Product{Title: "iPhone", CategoryID: "c2"}}))
}
