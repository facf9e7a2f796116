// Package mongostore implements the document repositories on MongoDB.
//
// Documents are read into bson.M and parsed into domain types in decode.go;
// loosely typed fields are coerced there and nowhere else.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"aura/internal/repository"
)

const (
	colCategories = "categories"
	colProducts   = "products"
	colVariants   = "product_variants"
	colSellers    = "seller_profiles"
	colReviews    = "reviews"
	colCart       = "cart_items"
	colOrders     = "orders"
	colImages     = "images"
)

// Store owns the client; construct with Open and release with Close
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	log    *slog.Logger
}

// Open connects and pings the server
func Open(ctx context.Context, uri, database string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	log.Info("mongo connected", "database", database)
	return &Store{client: client, db: client.Database(database), log: log}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) col(name string) *mongo.Collection { return s.db.Collection(name) }

// Stores returns the document repositories. Users live in the identity store
// and must be supplied by the caller.
func (s *Store) Stores(users repository.UserRepository) repository.Stores {
	return repository.Stores{
		Users:      users,
		Categories: &Categories{s.col(colCategories)},
		Products:   &Products{s.col(colProducts)},
		Variants:   &Variants{s.col(colVariants)},
		Sellers:    &Sellers{s.col(colSellers)},
		Reviews:    &Reviews{s.col(colReviews)},
		Carts:      &Carts{s.col(colCart)},
		Orders:     &Orders{s.col(colOrders)},
	}
}

// Images returns the image blob collection
func (s *Store) Images() *Images { return &Images{s.col(colImages)} }

// EnsureIndexes creates the indexes the repositories rely on
func (s *Store) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	specs := map[string][]mongo.IndexModel{
		colProducts: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "id", Value: 1}}},
			{Keys: bson.D{{Key: "sellerId", Value: 1}}},
			{Keys: bson.D{{Key: "categoryId", Value: 1}}},
		},
		colVariants: {
			{Keys: bson.D{{Key: "productId", Value: 1}}},
			{Keys: bson.D{{Key: "id", Value: 1}}},
		},
		colReviews: {
			{Keys: bson.D{{Key: "productId", Value: 1}}},
		},
		colSellers: {
			{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "id", Value: 1}}},
		},
		colCart: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "variantId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		colOrders: {
			{Keys: bson.D{{Key: "userId", Value: 1}}},
			{Keys: bson.D{{Key: "items.sellerId", Value: 1}}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
	}
	for name, models := range specs {
		if _, err := s.col(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("indexes on %s: %w", name, err)
		}
		s.log.Info("indexes ensured", "collection", name, "count", len(models))
	}
	return nil
}

// idFilter addresses a document by canonical id or, when it parses, by _id
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"$or": bson.A{bson.M{"id": id}, bson.M{"_id": oid}}}
	}
	return bson.M{"id": id}
}

// idsFilter is idFilter over a set
func idsFilter(ids []string) bson.M {
	oids := bson.A{}
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return bson.M{"id": bson.M{"$in": ids}}
	}
	return bson.M{"$or": bson.A{bson.M{"id": bson.M{"$in": ids}}, bson.M{"_id": bson.M{"$in": oids}}}}
}

// userIDValues matches user references stored as numbers or as strings.
// Numeric BSON types compare by value, so one number covers int32, int64 and double.
func userIDValues(id int64) bson.M {
	return bson.M{"$in": bson.A{id, strconv.FormatInt(id, 10)}}
}

// newIDs returns a fresh ObjectID and its hex as canonical id
func newIDs() (primitive.ObjectID, string) {
	oid := primitive.NewObjectID()
	return oid, oid.Hex()
}

func findAll(ctx context.Context, c *mongo.Collection, filter any, opts ...*options.FindOptions) ([]bson.M, error) {
	cur, err := c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func findOne(ctx context.Context, c *mongo.Collection, filter any) (bson.M, error) {
	var doc bson.M
	if err := c.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func insertionOrder() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
}

func dupToConflict(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrConflict
	}
	return err
}

func nowUTC() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }
