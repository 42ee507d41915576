package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"wastenot/internal/domain"
	"wastenot/internal/storage/storagetest"
)

// newTestStore connects to the database named by TEST_DATABASE_URL and resets
// the entity tables (including id sequences) so each subtest starts clean.
// Without the variable the test is skipped; the memory backend covers the
// shared contract in every run.
func newTestStore(t *testing.T) domain.Storage {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	store, err := New(ctx, pool)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `TRUNCATE products, agents, donations, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return store
}

func TestConformance(t *testing.T) {
	storagetest.Run(t, newTestStore)
}

func TestCreateUserDuplicateUsernameFails(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, domain.InsertUser{Username: "dup", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)

	// The schema's UNIQUE constraint is the durable backend's enforcement;
	// the abstraction itself performs no pre-check.
	_, err = s.CreateUser(ctx, domain.InsertUser{Username: "dup", Email: "b@x.com", Password: "p"})
	require.Error(t, err)
}
