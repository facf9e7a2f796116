package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aura/internal/domain"
	"aura/internal/query"
	"aura/internal/repository"
)

type Products struct{ c *mongo.Collection }

var _ repository.ProductRepository = (*Products)(nil)

func (r *Products) Find(ctx context.Context, p query.Predicate) ([]domain.Product, error) {
	filter, err := translate(p)
	if err != nil {
		return nil, err
	}
	docs, err := findAll(ctx, r.c, filter, insertionOrder())
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	out := make([]domain.Product, 0, len(docs))
	for _, d := range docs {
		out = append(out, decodeProduct(d))
	}
	return out, nil
}

func (r *Products) Create(ctx context.Context, p *domain.Product) error {
	oid, id := newIDs()
	if p.ID == "" {
		p.ID = id
	}
	p.StorageID = id
	if p.CreatedAt.IsZero() {
		p.CreatedAt = nowUTC()
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	doc := bson.M{
		"_id":         oid,
		"id":          p.ID,
		"sellerId":    p.SellerID,
		"categoryId":  p.CategoryID,
		"title":       p.Title,
		"slug":        p.Slug,
		"description": p.Description,
		"brand":       p.Brand,
		"images":      images,
		"status":      string(p.Status),
		"createdAt":   p.CreatedAt,
	}
	if p.Specs != nil {
		doc["specsJson"] = p.Specs
	}
	if _, err := r.c.InsertOne(ctx, doc); err != nil {
		return dupToConflict(err)
	}
	return nil
}

func (r *Products) Update(ctx context.Context, id string, patch domain.ProductPatch) error {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Slug != nil {
		set["slug"] = *patch.Slug
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.CategoryID != nil {
		set["categoryId"] = *patch.CategoryID
	}
	if patch.Brand != nil {
		set["brand"] = *patch.Brand
	}
	if patch.Images != nil {
		set["images"] = *patch.Images
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.Specs != nil {
		set["specsJson"] = patch.Specs
	}
	if len(set) == 0 {
		n, err := r.c.CountDocuments(ctx, idFilter(id), options.Count().SetLimit(1))
		if err != nil {
			return err
		}
		if n == 0 {
			return repository.ErrNotFound
		}
		return nil
	}
	res, err := r.c.UpdateOne(ctx, idFilter(id), bson.M{"$set": set})
	if err != nil {
		return dupToConflict(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *Products) Delete(ctx context.Context, id string) error {
	res, err := r.c.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *Products) SlugExists(ctx context.Context, slug string) (bool, error) {
	n, err := r.c.CountDocuments(ctx, bson.M{"slug": slug}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Products) Count(ctx context.Context, sellerID string) (int64, error) {
	filter := bson.M{}
	if sellerID != "" {
		filter["sellerId"] = sellerID
	}
	return r.c.CountDocuments(ctx, filter)
}

func (r *Products) CountByCategory(ctx context.Context) (map[string]int64, error) {
	cur, err := r.c.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$categoryId"}, {Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}}}}},
	})
	if err != nil {
		return nil, err
	}
	var rows []bson.M
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[asString(row["_id"])] += asInt64(row["count"])
	}
	return out, nil
}

type Variants struct{ c *mongo.Collection }

var _ repository.VariantRepository = (*Variants)(nil)

func (r *Variants) ListByProductIDs(ctx context.Context, productIDs []string) (map[string][]domain.ProductVariant, error) {
	out := make(map[string][]domain.ProductVariant, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}
	docs, err := findAll(ctx, r.c, bson.M{"productId": bson.M{"$in": productIDs}}, insertionOrder())
	if err != nil {
		return nil, fmt.Errorf("find variants: %w", err)
	}
	for _, d := range docs {
		v := decodeVariant(d)
		out[v.ProductID] = append(out[v.ProductID], v)
	}
	return out, nil
}

func (r *Variants) GetByID(ctx context.Context, id string) (*domain.ProductVariant, error) {
	doc, err := findOne(ctx, r.c, idFilter(id))
	if err != nil {
		return nil, err
	}
	v := decodeVariant(doc)
	return &v, nil
}

func (r *Variants) Create(ctx context.Context, v *domain.ProductVariant) error {
	oid, id := newIDs()
	if v.ID == "" {
		v.ID = id
	}
	attrs := v.Attributes
	if attrs == nil {
		attrs = map[string]any{}
	}
	_, err := r.c.InsertOne(ctx, bson.M{
		"_id":                oid,
		"id":                 v.ID,
		"productId":          v.ProductID,
		"sku":                v.SKU,
		"priceCents":         v.PriceCents,
		"currency":           v.Currency,
		"stock":              v.Stock,
		"discountPercentage": v.DiscountPercentage,
		"shippingCostCents":  v.ShippingCostCents,
		"isFreeShipping":     v.IsFreeShipping,
		"attributesJson":     attrs,
	})
	return dupToConflict(err)
}

func (r *Variants) Update(ctx context.Context, id string, patch domain.VariantPatch) error {
	set := bson.M{}
	if patch.SKU != nil {
		set["sku"] = *patch.SKU
	}
	if patch.PriceCents != nil {
		set["priceCents"] = *patch.PriceCents
	}
	if patch.Stock != nil {
		set["stock"] = *patch.Stock
	}
	if patch.DiscountPercentage != nil {
		set["discountPercentage"] = *patch.DiscountPercentage
	}
	if patch.ShippingCostCents != nil {
		set["shippingCostCents"] = *patch.ShippingCostCents
	}
	if patch.IsFreeShipping != nil {
		set["isFreeShipping"] = *patch.IsFreeShipping
	}
	if len(set) == 0 {
		return nil
	}
	res, err := r.c.UpdateOne(ctx, idFilter(id), bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *Variants) DeleteByProductID(ctx context.Context, productID string) error {
	_, err := r.c.DeleteMany(ctx, bson.M{"productId": productID})
	return err
}

type Categories struct{ c *mongo.Collection }

var _ repository.CategoryRepository = (*Categories)(nil)

func (r *Categories) List(ctx context.Context) ([]domain.Category, error) {
	docs, err := findAll(ctx, r.c, bson.M{}, insertionOrder())
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	out := make([]domain.Category, 0, len(docs))
	for _, d := range docs {
		out = append(out, decodeCategory(d))
	}
	return out, nil
}

func (r *Categories) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	doc, err := findOne(ctx, r.c, idFilter(id))
	if err != nil {
		return nil, err
	}
	c := decodeCategory(doc)
	return &c, nil
}

func (r *Categories) Create(ctx context.Context, c *domain.Category) error {
	oid, id := newIDs()
	if c.ID == "" {
		c.ID = id
	}
	doc := bson.M{"_id": oid, "id": c.ID, "name": c.Name}
	if c.Description != "" {
		doc["description"] = c.Description
	}
	if c.Icon != "" {
		doc["icon"] = c.Icon
	}
	if c.ParentID != "" {
		doc["parentId"] = c.ParentID
	}
	_, err := r.c.InsertOne(ctx, doc)
	return dupToConflict(err)
}
