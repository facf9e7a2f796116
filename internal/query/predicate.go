// Package query builds the first-stage product match as a predicate tree.
//
// The tree is store-agnostic: the in-memory repository evaluates it with
// Match, the Mongo repository translates it to a filter document.
package query

import (
	"strings"

	"aura/internal/domain"
)

// Field addressable product attribute
type Field string

const (
	FieldID          Field = "id"
	FieldStorageID   Field = "_id"
	FieldSlug        Field = "slug"
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldCategoryID  Field = "categoryId"
	FieldSellerID    Field = "sellerId"
	FieldBrand       Field = "brand"
	FieldStatus      Field = "status"
)

// Record exposes fields of a candidate document
type Record interface {
	FieldValue(f Field) string
}

// Predicate node of the match tree
type Predicate interface {
	Match(r Record) bool
}

// Eq exact string equality
type Eq struct {
	Field Field
	Value string
}

func (e Eq) Match(r Record) bool { return r.FieldValue(e.Field) == e.Value }

// Contains case-insensitive substring over any of Fields
type Contains struct {
	Fields []Field
	Term   string
}

func (c Contains) Match(r Record) bool {
	term := strings.ToLower(c.Term)
	for _, f := range c.Fields {
		if strings.Contains(strings.ToLower(r.FieldValue(f)), term) {
			return true
		}
	}
	return false
}

// And matches when every child matches; empty And matches everything
type And []Predicate

func (a And) Match(r Record) bool {
	for _, p := range a {
		if !p.Match(r) {
			return false
		}
	}
	return true
}

// Or matches when any child matches; empty Or matches nothing
type Or []Predicate

func (o Or) Match(r Record) bool {
	for _, p := range o {
		if p.Match(r) {
			return true
		}
	}
	return false
}

// All matches every record
func All() Predicate { return And{} }

// ProductMatch builds the stage-1 predicate from fields evaluable on the product alone.
// One node per present filter, joined by And.
func ProductMatch(f domain.ProductFilter) Predicate {
	nodes := And{}
	if s := strings.TrimSpace(f.Search); s != "" {
		nodes = append(nodes, Contains{Fields: []Field{FieldTitle, FieldDescription}, Term: s})
	}
	if f.CategoryID != "" {
		nodes = append(nodes, Eq{Field: FieldCategoryID, Value: f.CategoryID})
	}
	if f.SellerID != "" {
		nodes = append(nodes, Eq{Field: FieldSellerID, Value: f.SellerID})
	}
	if f.Brand != "" {
		nodes = append(nodes, Eq{Field: FieldBrand, Value: f.Brand})
	}
	if f.Status != "" {
		nodes = append(nodes, Eq{Field: FieldStatus, Value: string(f.Status)})
	}
	if f.ID != "" {
		nodes = append(nodes, IDMatch(f.ID))
	}
	if f.Slug != "" {
		nodes = append(nodes, Eq{Field: FieldSlug, Value: f.Slug})
	}
	return nodes
}

// IDMatch matches either the canonical id or the storage-native id
func IDMatch(id string) Predicate {
	return Or{Eq{Field: FieldID, Value: id}, Eq{Field: FieldStorageID, Value: id}}
}

// ProductRecord adapts a product to Record
type ProductRecord struct{ P *domain.Product }

func (r ProductRecord) FieldValue(f Field) string {
	switch f {
	case FieldID:
		return r.P.ID
	case FieldStorageID:
		return r.P.StorageID
	case FieldSlug:
		return r.P.Slug
	case FieldTitle:
		return r.P.Title
	case FieldDescription:
		return r.P.Description
	case FieldCategoryID:
		return r.P.CategoryID
	case FieldSellerID:
		return r.P.SellerID
	case FieldBrand:
		return r.P.Brand
	case FieldStatus:
		return string(r.P.Status)
	}
	return ""
}
