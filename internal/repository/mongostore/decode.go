package mongostore

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"aura/internal/domain"
)

// Coercion helpers. Field values may arrive as any BSON scalar, strings
// included; each helper returns the zero value for absent or unusable data.

func asString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case primitive.ObjectID:
		return x.Hex()
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	}
	return ""
}

func asFloat(v any) float64 {
	switch x := v.(type) {
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case int:
		return float64(x)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0
		}
		return x
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	case primitive.Decimal128:
		return asFloat(x.String())
	}
	return 0
}

func asInt64(v any) int64 {
	switch x := v.(type) {
	case int32:
		return int64(x)
	case int64:
		return x
	case int:
		return int64(x)
	}
	return int64(math.Round(asFloat(v)))
}

func asInt(v any) int { return int(asInt64(v)) }

func asBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(x))
		return b
	case nil:
		return false
	}
	return asFloat(v) != 0
}

func asTime(v any) time.Time {
	switch x := v.(type) {
	case primitive.DateTime:
		return x.Time().UTC()
	case time.Time:
		return x.UTC()
	case primitive.Timestamp:
		return time.Unix(int64(x.T), 0).UTC()
	case string:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, x); err == nil {
				return t.UTC()
			}
		}
	case int64:
		return time.UnixMilli(x).UTC()
	}
	return time.Time{}
}

func asStrings(v any) []string {
	var items []any
	switch x := v.(type) {
	case primitive.A:
		items = x
	case []any:
		items = x
	case []string:
		return append([]string(nil), x...)
	case string:
		if x == "" {
			return nil
		}
		return []string{x}
	default:
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := asString(it); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// asMap accepts embedded documents in either representation or a JSON string
func asMap(v any) map[string]any {
	switch x := v.(type) {
	case primitive.M:
		return normalize(x).(map[string]any)
	case map[string]any:
		return normalize(x).(map[string]any)
	case primitive.D:
		return normalize(x.Map()).(map[string]any)
	case string:
		var m map[string]any
		if json.Unmarshal([]byte(x), &m) == nil {
			return m
		}
	}
	return nil
}

// normalize converts nested BSON containers into plain maps and slices so the
// result serializes as regular JSON
func normalize(v any) any {
	switch x := v.(type) {
	case primitive.M:
		return normalize(map[string]any(x))
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = normalize(val)
		}
		return out
	case primitive.D:
		return normalize(x.Map())
	case primitive.A:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = normalize(val)
		}
		return out
	case primitive.ObjectID:
		return x.Hex()
	case primitive.DateTime:
		return x.Time().UTC()
	}
	return v
}

// first returns the first present key
func first(doc bson.M, keys ...string) any {
	for _, k := range keys {
		if v, ok := doc[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// canonicalID is the document's id field, else the hex of _id
func canonicalID(doc bson.M) string {
	if id := asString(doc["id"]); id != "" {
		return id
	}
	return asString(doc["_id"])
}

func decodeCategory(doc bson.M) domain.Category {
	return domain.Category{
		ID:          canonicalID(doc),
		Name:        asString(doc["name"]),
		Description: asString(doc["description"]),
		Icon:        asString(doc["icon"]),
		ParentID:    asString(doc["parentId"]),
	}
}

// decodeProduct also collects the legacy flat pricing fields. Legacy price
// fields hold minor units; shippingCost without the Cents suffix is major units.
func decodeProduct(doc bson.M) domain.Product {
	p := domain.Product{
		ID:          canonicalID(doc),
		StorageID:   asString(doc["_id"]),
		SellerID:    asString(doc["sellerId"]),
		CategoryID:  asString(doc["categoryId"]),
		Title:       asString(first(doc, "title", "name")),
		Slug:        asString(doc["slug"]),
		Description: asString(doc["description"]),
		Brand:       asString(doc["brand"]),
		Specs:       asMap(first(doc, "specsJson", "specs")),
		Images:      asStrings(doc["images"]),
		Status:      domain.ProductStatus(asString(doc["status"])),
		CreatedAt:   asTime(doc["createdAt"]),
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	p.Legacy = domain.LegacyPricing{
		PriceCents:         asInt64(first(doc, "priceCents", "price")),
		Stock:              asInt64(doc["stock"]),
		SKU:                asString(doc["sku"]),
		Currency:           asString(doc["currency"]),
		DiscountPercentage: asInt(doc["discountPercentage"]),
		IsFreeShipping:     asBool(first(doc, "isFreeShipping", "freeShipping")),
	}
	if v, ok := doc["shippingCostCents"]; ok && v != nil {
		p.Legacy.ShippingCostCents = asInt64(v)
	} else {
		p.Legacy.ShippingCostCents = int64(math.Round(asFloat(doc["shippingCost"]) * 100))
	}
	return p
}

func decodeVariant(doc bson.M) domain.ProductVariant {
	return domain.ProductVariant{
		ID:                 canonicalID(doc),
		ProductID:          asString(doc["productId"]),
		SKU:                asString(doc["sku"]),
		PriceCents:         asInt64(first(doc, "priceCents", "price")),
		Currency:           asString(doc["currency"]),
		Stock:              asInt64(doc["stock"]),
		DiscountPercentage: asInt(doc["discountPercentage"]),
		ShippingCostCents:  asInt64(doc["shippingCostCents"]),
		IsFreeShipping:     asBool(first(doc, "isFreeShipping", "freeShipping")),
		Attributes:         asMap(first(doc, "attributesJson", "attributes")),
	}
}

func decodeSeller(doc bson.M) domain.SellerProfile {
	return domain.SellerProfile{
		ID:          canonicalID(doc),
		UserID:      asInt64(doc["userId"]),
		DisplayName: asString(doc["displayName"]),
		Description: asString(doc["description"]),
		Status:      domain.SellerStatus(asString(doc["status"])),
		Location:    asString(doc["location"]),
		CreatedAt:   asTime(doc["createdAt"]),
	}
}

func decodeReview(doc bson.M) domain.Review {
	return domain.Review{
		ID:        canonicalID(doc),
		UserID:    asInt64(doc["userId"]),
		ProductID: asString(doc["productId"]),
		Rating:    asInt(doc["rating"]),
		Comment:   asString(doc["comment"]),
		CreatedAt: asTime(doc["createdAt"]),
	}
}

func decodeCartItem(doc bson.M) domain.CartItem {
	return domain.CartItem{
		ID:        canonicalID(doc),
		UserID:    asInt64(doc["userId"]),
		VariantID: asString(doc["variantId"]),
		Quantity:  asInt(doc["quantity"]),
	}
}

func decodeOrder(doc bson.M) domain.Order {
	o := domain.Order{
		ID:                canonicalID(doc),
		UserID:            asInt64(doc["userId"]),
		Status:            domain.OrderStatus(asString(doc["status"])),
		TotalCents:        asInt64(first(doc, "totalCents", "total")),
		Currency:          asString(doc["currency"]),
		ShippingAddressID: asString(doc["shippingAddressId"]),
		CreatedAt:         asTime(doc["createdAt"]),
		Items:             []domain.OrderItem{},
	}
	var items []any
	switch x := doc["items"].(type) {
	case primitive.A:
		items = x
	case []any:
		items = x
	}
	for _, raw := range items {
		m := asMap(raw)
		if m == nil {
			continue
		}
		it := bson.M(m)
		o.Items = append(o.Items, domain.OrderItem{
			VariantID:      asString(it["variantId"]),
			ProductID:      asString(it["productId"]),
			SellerID:       asString(it["sellerId"]),
			Title:          asString(it["title"]),
			UnitPriceCents: asInt64(first(it, "unitPriceCents", "priceCents", "price")),
			Quantity:       asInt(it["quantity"]),
		})
	}
	// pre-items documents carried the seller on the order itself
	if sellerID := asString(doc["sellerId"]); sellerID != "" && len(o.Items) == 0 {
		o.Items = append(o.Items, domain.OrderItem{SellerID: sellerID, UnitPriceCents: o.TotalCents, Quantity: 1})
	}
	return o
}

func decodeImage(doc bson.M) domain.Image {
	img := domain.Image{
		ID:        canonicalID(doc),
		MimeType:  asString(first(doc, "mimeType", "contentType")),
		CreatedAt: asTime(doc["createdAt"]),
	}
	switch x := doc["data"].(type) {
	case primitive.Binary:
		img.Data = x.Data
	case []byte:
		img.Data = x
	}
	return img
}
