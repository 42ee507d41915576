package domain

import "context"

// Storage is the sole point of truth for the four entity collections. Both
// backends (in-memory and Postgres) satisfy it with identical externally
// observable behavior.
//
// Id-based lookups return (nil, nil) when nothing matches; an error means the
// underlying medium failed, never "not found". Callers translate the empty
// result into whatever their boundary needs.
type Storage interface {
	GetUser(ctx context.Context, id int64) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, in InsertUser) (*User, error)

	GetProducts(ctx context.Context) ([]Product, error)
	GetProductByID(ctx context.Context, id int64) (*Product, error)
	GetProductsByCategory(ctx context.Context, category string) ([]Product, error)
	CreateProduct(ctx context.Context, in InsertProduct) (*Product, error)
	UpdateProduct(ctx context.Context, id int64, patch ProductPatch) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) (bool, error)

	GetAgents(ctx context.Context) ([]Agent, error)
	GetAgentByID(ctx context.Context, id int64) (*Agent, error)
	CreateAgent(ctx context.Context, in InsertAgent) (*Agent, error)

	GetDonations(ctx context.Context) ([]Donation, error)
	CreateDonation(ctx context.Context, in InsertDonation) (*Donation, error)
}
