//go:build integration

package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"aura/internal/domain"
	"aura/internal/repository"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatal(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatal(err)
	}
	dsn := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())

	db, err := Open(ctx, dsn, PoolConfig{MaxOpenConns: 5})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestUsers_Lifecycle(t *testing.T) {
	ctx := context.Background()
	users := NewUsers(setupTestDB(t))

	jane := domain.User{Email: "jane@example.com", PasswordHash: "h", Name: "Jane", Role: domain.RoleBuyer}
	if err := users.Create(ctx, &jane); err != nil {
		t.Fatalf("create: %v", err)
	}
	if jane.ID == 0 || jane.CreatedAt.IsZero() {
		t.Fatalf("defaults not returned: %+v", jane)
	}

	dup := domain.User{Email: "JANE@example.com", PasswordHash: "h", Role: domain.RoleBuyer}
	if err := users.Create(ctx, &dup); !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	got, err := users.GetByEmail(ctx, "Jane@Example.com")
	if err != nil || got.ID != jane.ID {
		t.Fatalf("get by email: %v %v", got, err)
	}

	role := domain.RoleSeller
	updated, err := users.Update(ctx, jane.ID, domain.UserPatch{Role: &role})
	if err != nil || updated.Role != domain.RoleSeller || updated.Name != "Jane" {
		t.Fatalf("update: %+v %v", updated, err)
	}

	byID, err := users.GetByIDs(ctx, []int64{jane.ID, 9999})
	if err != nil || len(byID) != 1 {
		t.Fatalf("get by ids: %v %v", byID, err)
	}

	if _, err := users.GetByID(ctx, 9999); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	n, err := users.Count(ctx)
	if err != nil || n != 1 {
		t.Fatalf("count: %d %v", n, err)
	}
}
