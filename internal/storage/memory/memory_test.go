package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"wastenot/internal/domain"
	"wastenot/internal/storage/storagetest"
)

func TestConformance(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) domain.Storage {
		t.Helper()
		return NewEmpty()
	})
}

func TestSeedData(t *testing.T) {
	ctx := context.Background()
	s := New()

	user, err := s.GetUserByUsername(ctx, "johndoe")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, int64(1), user.ID)
	require.Equal(t, "john@example.com", user.Email)

	products, err := s.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 4)

	categories := make(map[string]bool)
	for _, p := range products {
		categories[p.Category] = true
		require.True(t, p.IsAvailable)
		require.NotNil(t, p.DonorID)
		require.Equal(t, user.ID, *p.DonorID)
	}
	require.Len(t, categories, 4, "seed products span four distinct categories")

	agents, err := s.GetAgents(ctx)
	require.NoError(t, err)
	require.Len(t, agents, 3)

	ratings := make(map[float64]bool)
	for _, a := range agents {
		ratings[a.Rating] = true
		require.NotNil(t, a.UserID)
		require.Equal(t, user.ID, *a.UserID)
	}
	require.Len(t, ratings, 3, "seed agents carry distinct ratings")

	donations, err := s.GetDonations(ctx)
	require.NoError(t, err)
	require.Empty(t, donations)
}

func TestSeededIDCountersContinue(t *testing.T) {
	ctx := context.Background()
	s := New()

	u, err := s.CreateUser(ctx, domain.InsertUser{Username: "x", Email: "x@x", Password: "p"})
	require.NoError(t, err)
	require.Equal(t, int64(2), u.ID)

	p, err := s.CreateProduct(ctx, domain.InsertProduct{Name: "n", Description: "d", Category: "c"})
	require.NoError(t, err)
	require.Equal(t, int64(5), p.ID)

	a, err := s.CreateAgent(ctx, domain.InsertAgent{Name: "n", Area: "a"})
	require.NoError(t, err)
	require.Equal(t, int64(4), a.ID)
}

// Callers get their own copies; mutating a returned record must not leak back
// into the store.
func TestReturnedRecordsAreCopies(t *testing.T) {
	ctx := context.Background()
	s := NewEmpty()

	created, err := s.CreateProduct(ctx, domain.InsertProduct{
		Name: "Chair", Description: "d", Category: "Furniture",
	})
	require.NoError(t, err)

	created.Name = "Mutated"
	created.IsAvailable = false

	got, err := s.GetProductByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Chair", got.Name)
	require.True(t, got.IsAvailable)
}
