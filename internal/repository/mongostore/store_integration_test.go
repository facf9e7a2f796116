//go:build integration

package mongostore

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"

	"aura/internal/catalog"
	"aura/internal/domain"
	"aura/internal/repository"
)

func setupTestStore(t *testing.T) (*Store, repository.Stores) {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "start mongo")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	s, err := Open(ctx, fmt.Sprintf("mongodb://%s:%s", host, port.Port()), "aura_test", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	require.NoError(t, s.EnsureIndexes(ctx))

	users := repository.NewMemoryStore().Stores().Users
	return s, s.Stores(users)
}

func TestStore_ProductsAndVariants(t *testing.T) {
	ctx := context.Background()
	_, st := setupTestStore(t)

	p := &domain.Product{SellerID: "s1", Title: "iPhone", Slug: "iphone", Status: domain.ProductActive}
	require.NoError(t, st.Products.Create(ctx, p))
	require.NotEmpty(t, p.ID)

	dup := &domain.Product{SellerID: "s1", Title: "iPhone", Slug: "iphone"}
	assert.True(t, errors.Is(st.Products.Create(ctx, dup), repository.ErrConflict))

	exists, err := st.Products.SlugExists(ctx, "iphone")
	require.NoError(t, err)
	assert.True(t, exists)

	v := &domain.ProductVariant{ProductID: p.ID, SKU: "IPH-1", PriceCents: 99990, Currency: "CLP", Stock: 3}
	require.NoError(t, st.Variants.Create(ctx, v))
	price := int64(89990)
	require.NoError(t, st.Variants.Update(ctx, v.ID, domain.VariantPatch{PriceCents: &price}))

	views, err := catalog.NewEngine(st).Query(ctx, domain.ProductFilter{Slug: "iphone"})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(89990), views[0].PriceCents)
	assert.Equal(t, v.ID, views[0].VariantID)

	require.NoError(t, st.Variants.DeleteByProductID(ctx, p.ID))
	require.NoError(t, st.Products.Delete(ctx, p.ID))
	exists, err = st.Products.SlugExists(ctx, "iphone")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStore_CartIncrementIsAdditive(t *testing.T) {
	ctx := context.Background()
	_, st := setupTestStore(t)

	require.NoError(t, st.Carts.Increment(ctx, 7, "v1", 2))
	require.NoError(t, st.Carts.Increment(ctx, 7, "v1", 3))
	items, err := st.Carts.ListByUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)

	require.NoError(t, st.Carts.Clear(ctx, 7))
	items, err = st.Carts.ListByUser(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStore_CartIncrementMatchesStringUserID(t *testing.T) {
	ctx := context.Background()
	s, st := setupTestStore(t)

	_, err := s.col(colCart).InsertOne(ctx, bson.M{"id": "legacy-row", "userId": "5", "variantId": "v1", "quantity": 1})
	require.NoError(t, err)

	require.NoError(t, st.Carts.Increment(ctx, 5, "v1", 2))
	items, err := st.Carts.ListByUser(ctx, 5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)

	n, err := s.col(colCart).CountDocuments(ctx, bson.M{"variantId": "v1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestStore_OrdersAndImages(t *testing.T) {
	ctx := context.Background()
	s, st := setupTestStore(t)

	o := &domain.Order{UserID: 1, Status: domain.OrderPending, TotalCents: 500, Currency: "CLP",
		Items: []domain.OrderItem{{VariantID: "v1", ProductID: "p1", SellerID: "s1", UnitPriceCents: 250, Quantity: 2}}}
	require.NoError(t, st.Orders.Create(ctx, o))
	require.NoError(t, st.Orders.UpdateStatus(ctx, o.ID, domain.OrderPaid))

	got, err := st.Orders.List(ctx, repository.OrderFilter{SellerID: "s1", Statuses: domain.CompletedOrderStatuses})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.OrderPaid, got[0].Status)

	n, err := st.Orders.Count(ctx, repository.OrderFilter{SellerID: "other"})
	require.NoError(t, err)
	assert.Zero(t, n)

	images := s.Images()
	img, err := images.Put(ctx, domain.Image{MimeType: "image/png", Data: []byte{1, 2, 3}})
	require.NoError(t, err)
	back, err := images.Get(ctx, img.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, back.Data)
	require.NoError(t, images.Delete(ctx, img.ID))
	_, err = images.Get(ctx, img.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
