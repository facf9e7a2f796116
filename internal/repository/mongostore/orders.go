package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aura/internal/domain"
	"aura/internal/repository"
)

type Sellers struct{ c *mongo.Collection }

var _ repository.SellerRepository = (*Sellers)(nil)

func (r *Sellers) GetByUserID(ctx context.Context, userID int64) (*domain.SellerProfile, error) {
	doc, err := findOne(ctx, r.c, bson.M{"userId": userIDValues(userID)})
	if err != nil {
		return nil, err
	}
	p := decodeSeller(doc)
	return &p, nil
}

func (r *Sellers) GetByID(ctx context.Context, id string) (*domain.SellerProfile, error) {
	doc, err := findOne(ctx, r.c, idFilter(id))
	if err != nil {
		return nil, err
	}
	p := decodeSeller(doc)
	return &p, nil
}

// GetByIDs keys each profile by its canonical id and by its _id hex, so
// references written with either resolve
func (r *Sellers) GetByIDs(ctx context.Context, ids []string) (map[string]domain.SellerProfile, error) {
	out := make(map[string]domain.SellerProfile, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	docs, err := findAll(ctx, r.c, idsFilter(ids))
	if err != nil {
		return nil, fmt.Errorf("find seller profiles: %w", err)
	}
	for _, d := range docs {
		p := decodeSeller(d)
		out[p.ID] = p
		if hex := asString(d["_id"]); hex != "" && hex != p.ID {
			out[hex] = p
		}
	}
	return out, nil
}

func (r *Sellers) Create(ctx context.Context, p *domain.SellerProfile) error {
	oid, id := newIDs()
	if p.ID == "" {
		p.ID = id
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = nowUTC()
	}
	_, err := r.c.InsertOne(ctx, bson.M{
		"_id":         oid,
		"id":          p.ID,
		"userId":      p.UserID,
		"displayName": p.DisplayName,
		"description": p.Description,
		"status":      string(p.Status),
		"location":    p.Location,
		"createdAt":   p.CreatedAt,
	})
	return dupToConflict(err)
}

func (r *Sellers) UpdateByUserID(ctx context.Context, userID int64, patch domain.SellerProfilePatch) (*domain.SellerProfile, error) {
	set := bson.M{}
	if patch.DisplayName != nil {
		set["displayName"] = *patch.DisplayName
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	filter := bson.M{"userId": userIDValues(userID)}
	if len(set) == 0 {
		return r.GetByUserID(ctx, userID)
	}
	return r.findAndSet(ctx, filter, set)
}

func (r *Sellers) SetStatus(ctx context.Context, id string, status domain.SellerStatus) (*domain.SellerProfile, error) {
	return r.findAndSet(ctx, idFilter(id), bson.M{"status": string(status)})
}

func (r *Sellers) findAndSet(ctx context.Context, filter, set bson.M) (*domain.SellerProfile, error) {
	var doc bson.M
	err := r.c.FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p := decodeSeller(doc)
	return &p, nil
}

func (r *Sellers) ListByStatus(ctx context.Context, status domain.SellerStatus) ([]domain.SellerProfile, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}
	docs, err := findAll(ctx, r.c, filter, insertionOrder())
	if err != nil {
		return nil, fmt.Errorf("find seller profiles: %w", err)
	}
	out := make([]domain.SellerProfile, 0, len(docs))
	for _, d := range docs {
		out = append(out, decodeSeller(d))
	}
	return out, nil
}

type Reviews struct{ c *mongo.Collection }

var _ repository.ReviewRepository = (*Reviews)(nil)

func (r *Reviews) ListByProductIDs(ctx context.Context, productIDs []string) (map[string][]domain.Review, error) {
	out := make(map[string][]domain.Review, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}
	docs, err := findAll(ctx, r.c, bson.M{"productId": bson.M{"$in": productIDs}}, insertionOrder())
	if err != nil {
		return nil, fmt.Errorf("find reviews: %w", err)
	}
	for _, d := range docs {
		rv := decodeReview(d)
		out[rv.ProductID] = append(out[rv.ProductID], rv)
	}
	return out, nil
}

func (r *Reviews) Create(ctx context.Context, rv *domain.Review) error {
	oid, id := newIDs()
	if rv.ID == "" {
		rv.ID = id
	}
	if rv.CreatedAt.IsZero() {
		rv.CreatedAt = nowUTC()
	}
	doc := bson.M{
		"_id":       oid,
		"id":        rv.ID,
		"userId":    rv.UserID,
		"productId": rv.ProductID,
		"rating":    rv.Rating,
		"createdAt": rv.CreatedAt,
	}
	if rv.Comment != "" {
		doc["comment"] = rv.Comment
	}
	_, err := r.c.InsertOne(ctx, doc)
	return err
}

func (r *Reviews) DeleteByProductID(ctx context.Context, productID string) error {
	_, err := r.c.DeleteMany(ctx, bson.M{"productId": productID})
	return err
}

type Carts struct{ c *mongo.Collection }

var _ repository.CartRepository = (*Carts)(nil)

func (r *Carts) ListByUser(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	docs, err := findAll(ctx, r.c, bson.M{"userId": userIDValues(userID)}, insertionOrder())
	if err != nil {
		return nil, fmt.Errorf("find cart items: %w", err)
	}
	out := make([]domain.CartItem, 0, len(docs))
	for _, d := range docs {
		out = append(out, decodeCartItem(d))
	}
	return out, nil
}

// Increment adds to an existing row, whichever userId form it was stored with,
// and otherwise upserts with $inc. Concurrent inserts for the same pair
// converge on one document thanks to the unique (userId, variantId) index.
func (r *Carts) Increment(ctx context.Context, userID int64, variantID string, qty int) error {
	inc := bson.M{"$inc": bson.M{"quantity": qty}}
	res, err := r.c.UpdateOne(ctx, bson.M{"userId": userIDValues(userID), "variantId": variantID}, inc)
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	oid, id := newIDs()
	_, err = r.c.UpdateOne(ctx,
		bson.M{"userId": userID, "variantId": variantID},
		bson.M{
			"$inc":         bson.M{"quantity": qty},
			"$setOnInsert": bson.M{"_id": oid, "id": id},
		},
		options.Update().SetUpsert(true),
	)
	if mongo.IsDuplicateKeyError(err) {
		// lost the insert race; the row exists now
		_, err = r.c.UpdateOne(ctx, bson.M{"userId": userID, "variantId": variantID}, inc)
	}
	return err
}

func (r *Carts) SetQuantity(ctx context.Context, userID int64, variantID string, qty int) error {
	res, err := r.c.UpdateOne(ctx,
		bson.M{"userId": userIDValues(userID), "variantId": variantID},
		bson.M{"$set": bson.M{"quantity": qty}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *Carts) Remove(ctx context.Context, userID int64, variantID string) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"userId": userIDValues(userID), "variantId": variantID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *Carts) Clear(ctx context.Context, userID int64) error {
	_, err := r.c.DeleteMany(ctx, bson.M{"userId": userIDValues(userID)})
	return err
}

type Orders struct{ c *mongo.Collection }

var _ repository.OrderRepository = (*Orders)(nil)

func (r *Orders) Create(ctx context.Context, o *domain.Order) error {
	oid, id := newIDs()
	if o.ID == "" {
		o.ID = id
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = nowUTC()
	}
	items := make(bson.A, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, bson.M{
			"variantId":      it.VariantID,
			"productId":      it.ProductID,
			"sellerId":       it.SellerID,
			"title":          it.Title,
			"unitPriceCents": it.UnitPriceCents,
			"quantity":       it.Quantity,
		})
	}
	doc := bson.M{
		"_id":        oid,
		"id":         o.ID,
		"userId":     o.UserID,
		"status":     string(o.Status),
		"totalCents": o.TotalCents,
		"currency":   o.Currency,
		"items":      items,
		"createdAt":  o.CreatedAt,
	}
	if o.ShippingAddressID != "" {
		doc["shippingAddressId"] = o.ShippingAddressID
	}
	_, err := r.c.InsertOne(ctx, doc)
	return err
}

func (r *Orders) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	doc, err := findOne(ctx, r.c, idFilter(id))
	if err != nil {
		return nil, err
	}
	o := decodeOrder(doc)
	return &o, nil
}

func (r *Orders) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	res, err := r.c.UpdateOne(ctx, idFilter(id), bson.M{"$set": bson.M{"status": string(status), "updatedAt": nowUTC()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *Orders) List(ctx context.Context, f repository.OrderFilter) ([]domain.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	docs, err := findAll(ctx, r.c, orderFilter(f), opts)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	out := make([]domain.Order, 0, len(docs))
	for _, d := range docs {
		out = append(out, decodeOrder(d))
	}
	return out, nil
}

func (r *Orders) Count(ctx context.Context, f repository.OrderFilter) (int64, error) {
	return r.c.CountDocuments(ctx, orderFilter(f))
}

func orderFilter(f repository.OrderFilter) bson.M {
	clauses := bson.A{}
	if f.UserID != 0 {
		clauses = append(clauses, bson.M{"userId": userIDValues(f.UserID)})
	}
	if f.SellerID != "" {
		clauses = append(clauses, bson.M{"$or": bson.A{
			bson.M{"items.sellerId": f.SellerID},
			bson.M{"sellerId": f.SellerID},
		}})
	}
	if len(f.Statuses) > 0 {
		in := make(bson.A, len(f.Statuses))
		for i, s := range f.Statuses {
			in[i] = string(s)
		}
		clauses = append(clauses, bson.M{"status": bson.M{"$in": in}})
	}
	if !f.Since.IsZero() {
		clauses = append(clauses, bson.M{"createdAt": bson.M{"$gte": f.Since.UTC().Truncate(time.Millisecond)}})
	}
	switch len(clauses) {
	case 0:
		return bson.M{}
	case 1:
		return clauses[0].(bson.M)
	}
	return bson.M{"$and": clauses}
}

// Images stores uploaded binaries in the document store
type Images struct{ c *mongo.Collection }

func (r *Images) Put(ctx context.Context, img domain.Image) (domain.Image, error) {
	oid, id := newIDs()
	if img.ID == "" {
		img.ID = id
	}
	if img.CreatedAt.IsZero() {
		img.CreatedAt = nowUTC()
	}
	_, err := r.c.InsertOne(ctx, bson.M{
		"_id":       oid,
		"id":        img.ID,
		"mimeType":  img.MimeType,
		"data":      img.Data,
		"createdAt": img.CreatedAt,
	})
	if err != nil {
		return domain.Image{}, err
	}
	return img, nil
}

func (r *Images) Get(ctx context.Context, id string) (domain.Image, error) {
	doc, err := findOne(ctx, r.c, idFilter(id))
	if err != nil {
		return domain.Image{}, err
	}
	return decodeImage(doc), nil
}

func (r *Images) Delete(ctx context.Context, id string) error {
	res, err := r.c.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
