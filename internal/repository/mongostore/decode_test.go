package mongostore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"aura/internal/domain"
	"aura/internal/query"
)

func TestDecodeProduct_LegacyFields(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	doc := bson.M{
		"_id":                oid,
		"sellerId":           "s1",
		"name":               "Old iPod",
		"slug":               "old-ipod",
		"price":              "5000",
		"stock":              int32(4),
		"freeShipping":       "true",
		"shippingCost":       2.5,
		"images":             primitive.A{"a.jpg", "", "b.jpg"},
		"specs":              primitive.D{{Key: "color", Value: "white"}},
		"createdAt":          primitive.NewDateTimeFromTime(created),
		"discountPercentage": float64(10),
	}
	p := decodeProduct(doc)

	assert.Equal(t, oid.Hex(), p.ID, "missing id falls back to _id hex")
	assert.Equal(t, oid.Hex(), p.StorageID)
	assert.Equal(t, "Old iPod", p.Title)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, p.Images)
	assert.Equal(t, map[string]any{"color": "white"}, p.Specs)
	assert.True(t, created.Equal(p.CreatedAt))
	assert.Equal(t, domain.LegacyPricing{
		PriceCents:         5000,
		Stock:              4,
		DiscountPercentage: 10,
		ShippingCostCents:  250,
		IsFreeShipping:     true,
	}, p.Legacy)
}

func TestDecodeProduct_CanonicalID(t *testing.T) {
	p := decodeProduct(bson.M{"_id": primitive.NewObjectID(), "id": "p-1", "title": "T"})
	assert.Equal(t, "p-1", p.ID)
	assert.NotEqual(t, p.ID, p.StorageID)
	assert.NotNil(t, p.Images)
}

func TestDecodeReview_StringRating(t *testing.T) {
	r := decodeReview(bson.M{"id": "r1", "rating": "4", "userId": "12", "productId": "p1"})
	assert.Equal(t, 4, r.Rating)
	assert.Equal(t, int64(12), r.UserID)
}

func TestDecodeVariant_Attributes(t *testing.T) {
	v := decodeVariant(bson.M{
		"id":             "v1",
		"productId":      "p1",
		"priceCents":     int64(129990),
		"attributesJson": `{"storage":"256GB"}`,
	})
	assert.Equal(t, int64(129990), v.PriceCents)
	assert.Equal(t, map[string]any{"storage": "256GB"}, v.Attributes)

	v = decodeVariant(bson.M{"attributes": primitive.M{"size": primitive.A{"S", "M"}}})
	assert.Equal(t, map[string]any{"size": []any{"S", "M"}}, v.Attributes)
}

func TestDecodeOrder_Items(t *testing.T) {
	o := decodeOrder(bson.M{
		"id":     "o1",
		"userId": int32(3),
		"status": "paid",
		"items": primitive.A{
			primitive.M{"variantId": "v1", "sellerId": "s1", "unitPriceCents": int64(1000), "quantity": int32(2)},
			primitive.D{{Key: "variantId", Value: "v2"}, {Key: "sellerId", Value: "s2"}, {Key: "priceCents", Value: 500}, {Key: "quantity", Value: "1"}},
		},
	})
	require.Len(t, o.Items, 2)
	assert.Equal(t, int64(3), o.UserID)
	assert.Equal(t, domain.OrderPaid, o.Status)
	assert.Equal(t, 2, o.Items[0].Quantity)
	assert.Equal(t, int64(500), o.Items[1].UnitPriceCents)
	assert.True(t, o.HasSeller("s2"))

	legacy := decodeOrder(bson.M{"id": "o2", "sellerId": "s9", "total": 700})
	require.Len(t, legacy.Items, 1)
	assert.True(t, legacy.HasSeller("s9"))
}

func TestCoercion(t *testing.T) {
	assert.Equal(t, int64(0), asInt64("abc"))
	assert.Equal(t, int64(3), asInt64(2.6))
	assert.Equal(t, 0.0, asFloat("NaN"))
	assert.False(t, asBool(nil))
	assert.True(t, asBool(int32(1)))
	assert.Equal(t, "", asString(nil))
	assert.True(t, asTime("2024-01-02").Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))
}

func TestTranslate(t *testing.T) {
	oid := primitive.NewObjectID()
	tests := []struct {
		name string
		in   query.Predicate
		want bson.M
	}{
		{"empty", query.And{}, bson.M{}},
		{"eq", query.Eq{Field: query.FieldCategoryID, Value: "c1"}, bson.M{"categoryId": "c1"}},
		{
			"id parses as object id",
			query.IDMatch(oid.Hex()),
			bson.M{"$or": bson.A{bson.M{"id": oid.Hex()}, bson.M{"_id": oid}}},
		},
		{"id not an object id", query.IDMatch("legacy-1"), bson.M{"id": "legacy-1"}},
		{"empty or", query.Or{}, matchNothing},
		{
			"search escapes regex",
			query.Contains{Fields: []query.Field{query.FieldTitle, query.FieldDescription}, Term: "a+b"},
			bson.M{"$or": bson.A{
				bson.M{"title": primitive.Regex{Pattern: `a\+b`, Options: "i"}},
				bson.M{"name": primitive.Regex{Pattern: `a\+b`, Options: "i"}},
				bson.M{"description": primitive.Regex{Pattern: `a\+b`, Options: "i"}},
			}},
		},
		{
			"single field",
			query.Contains{Fields: []query.Field{query.FieldDescription}, Term: "pro"},
			bson.M{"description": primitive.Regex{Pattern: "pro", Options: "i"}},
		},
		{
			"and",
			query.And{query.Eq{Field: query.FieldBrand, Value: "Apple"}, query.Eq{Field: query.FieldSlug, Value: "x"}},
			bson.M{"$and": bson.A{bson.M{"brand": "Apple"}, bson.M{"slug": "x"}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := translate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslate_ProductMatch(t *testing.T) {
	got, err := translate(query.ProductMatch(domain.ProductFilter{CategoryID: "c1", Status: domain.ProductActive}))
	require.NoError(t, err)
	assert.Equal(t, bson.M{"$and": bson.A{bson.M{"categoryId": "c1"}, bson.M{"status": "active"}}}, got)
}
