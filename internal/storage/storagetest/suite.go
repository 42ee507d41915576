// Package storagetest holds a black-box conformance suite for domain.Storage
// implementations. Both backends run the exact same assertions, which is the
// substitutability contract: given the same operation sequence they must
// produce observably identical results.
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"wastenot/internal/domain"
)

// Factory returns a fresh, empty store for each subtest.
type Factory func(t *testing.T) domain.Storage

// Run executes the full conformance suite against the given factory.
func Run(t *testing.T, factory Factory) {
	t.Run("UserRoundTrip", func(t *testing.T) { testUserRoundTrip(t, factory(t)) })
	t.Run("UserLookups", func(t *testing.T) { testUserLookups(t, factory(t)) })
	t.Run("UnknownIDsAreEmptyResults", func(t *testing.T) { testUnknownIDs(t, factory(t)) })
	t.Run("ProductCreateForcesAvailability", func(t *testing.T) { testProductAvailability(t, factory(t)) })
	t.Run("ProductCategoryFilter", func(t *testing.T) { testProductCategoryFilter(t, factory(t)) })
	t.Run("ProductPartialUpdate", func(t *testing.T) { testProductPartialUpdate(t, factory(t)) })
	t.Run("ProductDelete", func(t *testing.T) { testProductDelete(t, factory(t)) })
	t.Run("ProductIDsNotReused", func(t *testing.T) { testProductIDsNotReused(t, factory(t)) })
	t.Run("AgentDefaults", func(t *testing.T) { testAgentDefaults(t, factory(t)) })
	t.Run("DonationsAppendOnly", func(t *testing.T) { testDonations(t, factory(t)) })
	t.Run("ExampleScenario", func(t *testing.T) { testExampleScenario(t, factory(t)) })
}

func testUserRoundTrip(t *testing.T, s domain.Storage) {
	ctx := context.Background()
	name := "Alice Smith"

	created, err := s.CreateUser(ctx, domain.InsertUser{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hashed-secret",
		Name:     &name,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := s.GetUser(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "alice@example.com", got.Email)
	require.Equal(t, "hashed-secret", got.Password)
	require.NotNil(t, got.Name)
	require.Equal(t, name, *got.Name)
}

func testUserLookups(t *testing.T, s domain.Storage) {
	ctx := context.Background()

	created, err := s.CreateUser(ctx, domain.InsertUser{
		Username: "bob", Email: "bob@example.com", Password: "pw",
	})
	require.NoError(t, err)

	byName, err := s.GetUserByUsername(ctx, "bob")
	require.NoError(t, err)
	require.NotNil(t, byName)
	require.Equal(t, created.ID, byName.ID)
	require.Nil(t, byName.Name)

	byEmail, err := s.GetUserByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	require.Equal(t, created.ID, byEmail.ID)

	missing, err := s.GetUserByUsername(ctx, "nobody")
	require.NoError(t, err)
	require.Nil(t, missing)

	missing, err = s.GetUserByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func testUnknownIDs(t *testing.T, s domain.Storage) {
	ctx := context.Background()

	u, err := s.GetUser(ctx, 9999)
	require.NoError(t, err)
	require.Nil(t, u)

	p, err := s.GetProductByID(ctx, 9999)
	require.NoError(t, err)
	require.Nil(t, p)

	a, err := s.GetAgentByID(ctx, 9999)
	require.NoError(t, err)
	require.Nil(t, a)

	updated, err := s.UpdateProduct(ctx, 9999, domain.ProductPatch{})
	require.NoError(t, err)
	require.Nil(t, updated)
}

func testProductAvailability(t *testing.T, s domain.Storage) {
	ctx := context.Background()

	p, err := s.CreateProduct(ctx, domain.InsertProduct{
		Name: "Desk", Description: "Sturdy", Category: "Furniture",
	})
	require.NoError(t, err)
	require.True(t, p.IsAvailable)
	require.NotZero(t, p.ID)
	require.False(t, p.CreatedAt.IsZero())
	require.Nil(t, p.DonorID)
}

func testProductCategoryFilter(t *testing.T, s domain.Storage) {
	ctx := context.Background()

	for _, in := range []domain.InsertProduct{
		{Name: "Kettle", Description: "Electric", Category: "Kitchen"},
		{Name: "Novel", Description: "Paperback", Category: "Books"},
		{Name: "Pan", Description: "Non-stick", Category: "Kitchen"},
	} {
		_, err := s.CreateProduct(ctx, in)
		require.NoError(t, err)
	}

	kitchen, err := s.GetProductsByCategory(ctx, "Kitchen")
	require.NoError(t, err)
	require.Len(t, kitchen, 2)
	require.Equal(t, "Kettle", kitchen[0].Name)
	require.Equal(t, "Pan", kitchen[1].Name)

	none, err := s.GetProductsByCategory(ctx, "kitchen")
	require.NoError(t, err)
	require.Empty(t, none, "category match is exact, not case-folded")

	all, err := s.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func testProductPartialUpdate(t *testing.T, s domain.Storage) {
	ctx := context.Background()

	created, err := s.CreateProduct(ctx, domain.InsertProduct{
		Name: "Box of Novels", Description: "15 paperbacks", Category: "Misc",
	})
	require.NoError(t, err)

	category := "Books"
	updated, err := s.UpdateProduct(ctx, created.ID, domain.ProductPatch{Category: &category})
	require.NoError(t, err)
	require.NotNil(t, updated)

	// Only the category changed; everything else is untouched.
	require.Equal(t, "Books", updated.Category)
	require.Equal(t, created.Name, updated.Name)
	require.Equal(t, created.Description, updated.Description)
	require.Equal(t, created.IsAvailable, updated.IsAvailable)
	require.Equal(t, created.ID, updated.ID)

	unavailable := false
	updated, err = s.UpdateProduct(ctx, created.ID, domain.ProductPatch{IsAvailable: &unavailable})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.False(t, updated.IsAvailable)
	require.Equal(t, "Books", updated.Category)
}

func testProductDelete(t *testing.T, s domain.Storage) {
	ctx := context.Background()

	created, err := s.CreateProduct(ctx, domain.InsertProduct{
		Name: "Lamp", Description: "Works fine", Category: "Electronics",
	})
	require.NoError(t, err)

	ok, err := s.DeleteProduct(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := s.GetProductByID(ctx, created.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	// Deleting an already-deleted id reports false, never an error.
	ok, err = s.DeleteProduct(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func testProductIDsNotReused(t *testing.T, s domain.Storage) {
	ctx := context.Background()

	first, err := s.CreateProduct(ctx, domain.InsertProduct{
		Name: "First", Description: "d", Category: "Misc",
	})
	require.NoError(t, err)

	ok, err := s.DeleteProduct(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, ok)

	second, err := s.CreateProduct(ctx, domain.InsertProduct{
		Name: "Second", Description: "d", Category: "Misc",
	})
	require.NoError(t, err)
	require.Greater(t, second.ID, first.ID)
}

func testAgentDefaults(t *testing.T, s domain.Storage) {
	ctx := context.Background()

	defaulted, err := s.CreateAgent(ctx, domain.InsertAgent{Name: "Pat", Area: "East End"})
	require.NoError(t, err)
	require.Equal(t, domain.DefaultAgentRating, defaulted.Rating)
	require.Nil(t, defaulted.Bio)

	rating := 3.5
	rated, err := s.CreateAgent(ctx, domain.InsertAgent{Name: "Sam", Area: "Harbor", Rating: &rating})
	require.NoError(t, err)
	require.Equal(t, 3.5, rated.Rating)

	all, err := s.GetAgents(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, defaulted.ID, all[0].ID)
	require.Equal(t, rated.ID, all[1].ID)

	got, err := s.GetAgentByID(ctx, rated.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Sam", got.Name)
}

func testDonations(t *testing.T, s domain.Storage) {
	ctx := context.Background()

	msg := "keep it up"
	first, err := s.CreateDonation(ctx, domain.InsertDonation{
		DonorName: "Jane", Email: "jane@example.com", Amount: 25.50, Message: &msg,
	})
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := s.CreateDonation(ctx, domain.InsertDonation{
		DonorName: "Anonymous", Email: "anon@example.com", Amount: 5,
	})
	require.NoError(t, err)
	require.Greater(t, second.ID, first.ID)

	all, err := s.GetDonations(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "Jane", all[0].DonorName)
	require.Equal(t, 25.50, all[0].Amount)
	require.NotNil(t, all[0].Message)
	require.Equal(t, msg, *all[0].Message)
	require.Nil(t, all[1].Message)
}

// testExampleScenario walks the documented end-to-end sequence on an empty
// store: user id 1, product id 1, category lookup, delete, empty list.
func testExampleScenario(t *testing.T, s domain.Storage) {
	ctx := context.Background()

	user, err := s.CreateUser(ctx, domain.InsertUser{
		Username: "alice", Email: "a@x.com", Password: "secret1",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), user.ID)

	product, err := s.CreateProduct(ctx, domain.InsertProduct{
		Name: "Lamp", Description: "Works fine", Category: "Electronics", DonorID: &user.ID,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), product.ID)
	require.True(t, product.IsAvailable)

	electronics, err := s.GetProductsByCategory(ctx, "Electronics")
	require.NoError(t, err)
	require.Len(t, electronics, 1)
	require.Equal(t, product.ID, electronics[0].ID)

	ok, err := s.DeleteProduct(ctx, product.ID)
	require.NoError(t, err)
	require.True(t, ok)

	remaining, err := s.GetProducts(ctx)
	require.NoError(t, err)
	require.Empty(t, remaining)
}
