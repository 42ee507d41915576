package memory

import (
	"context"
	"sync"
	"time"

	"wastenot/internal/domain"
)

// compile-time check that *Store implements domain.Storage
var _ domain.Storage = (*Store)(nil)

// Store is the ephemeral storage backend: every collection lives in an
// in-process map keyed by id, with a monotonic counter per entity type.
// Counters only move forward, so ids are never reused after a delete.
//
// A single RWMutex guards all four collections. Storage operations are short
// and never block on I/O, so one coarse lock is enough.
type Store struct {
	mu sync.RWMutex

	users     map[int64]domain.User
	products  map[int64]domain.Product
	agents    map[int64]domain.Agent
	donations map[int64]domain.Donation

	userID     int64
	productID  int64
	agentID    int64
	donationID int64
}

// New constructs a Store pre-populated with the demo seed set (one user, four
// products, three agents) so the backend is usable without a registration step.
func New() *Store {
	s := NewEmpty()
	s.seed()
	return s
}

// NewEmpty constructs a Store with no records. Used by tests that need
// deterministic ids starting at 1.
func NewEmpty() *Store {
	return &Store{
		users:     make(map[int64]domain.User),
		products:  make(map[int64]domain.Product),
		agents:    make(map[int64]domain.Agent),
		donations: make(map[int64]domain.Donation),
	}
}

// GetUser returns the user with the given id, or nil when none exists.
func (s *Store) GetUser(_ context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, nil
}

// GetUserByUsername scans for an exact username match.
func (s *Store) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

// GetUserByEmail scans for an exact email match.
func (s *Store) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

// CreateUser assigns the next id and creation timestamp. Uniqueness of
// username/email is the caller's responsibility, not this backend's.
func (s *Store) CreateUser(_ context.Context, in domain.InsertUser) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID++
	u := domain.User{
		ID:        s.userID,
		Username:  in.Username,
		Email:     in.Email,
		Password:  in.Password,
		Name:      strPtr(in.Name),
		CreatedAt: time.Now(),
	}
	s.users[u.ID] = u
	return cloneUser(u), nil
}

// GetProducts returns all products in insertion order.
func (s *Store) GetProducts(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.productList(func(domain.Product) bool { return true }), nil
}

// GetProductByID returns the product with the given id, or nil.
func (s *Store) GetProductByID(_ context.Context, id int64) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.products[id]; ok {
		return cloneProduct(p), nil
	}
	return nil, nil
}

// GetProductsByCategory filters on an exact category string match.
func (s *Store) GetProductsByCategory(_ context.Context, category string) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.productList(func(p domain.Product) bool { return p.Category == category }), nil
}

// CreateProduct assigns the next id, forces availability to true and stamps
// the creation time.
func (s *Store) CreateProduct(_ context.Context, in domain.InsertProduct) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productID++
	p := domain.Product{
		ID:          s.productID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		DonorID:     i64Ptr(in.DonorID),
		ImageURL:    strPtr(in.ImageURL),
		IsAvailable: true,
		CreatedAt:   time.Now(),
	}
	s.products[p.ID] = p
	return cloneProduct(p), nil
}

// UpdateProduct merges the non-nil patch fields onto the stored record.
// Returns nil when the id is unknown.
func (s *Store) UpdateProduct(_ context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.DonorID != nil {
		p.DonorID = i64Ptr(patch.DonorID)
	}
	if patch.ImageURL != nil {
		p.ImageURL = strPtr(patch.ImageURL)
	}
	if patch.IsAvailable != nil {
		p.IsAvailable = *patch.IsAvailable
	}
	s.products[id] = p
	return cloneProduct(p), nil
}

// DeleteProduct removes the record and reports whether it existed. The id
// counter is untouched, so a deleted id is never handed out again.
func (s *Store) DeleteProduct(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return false, nil
	}
	delete(s.products, id)
	return true, nil
}

// GetAgents returns all agents in insertion order.
func (s *Store) GetAgents(_ context.Context) ([]domain.Agent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Agent, 0, len(s.agents))
	for id := int64(1); id <= s.agentID; id++ {
		if a, ok := s.agents[id]; ok {
			out = append(out, *cloneAgent(a))
		}
	}
	return out, nil
}

// GetAgentByID returns the agent with the given id, or nil.
func (s *Store) GetAgentByID(_ context.Context, id int64) (*domain.Agent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.agents[id]; ok {
		return cloneAgent(a), nil
	}
	return nil, nil
}

// CreateAgent assigns the next id, applying the default rating when the
// caller did not supply one.
func (s *Store) CreateAgent(_ context.Context, in domain.InsertAgent) (*domain.Agent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agentID++
	rating := domain.DefaultAgentRating
	if in.Rating != nil {
		rating = *in.Rating
	}
	a := domain.Agent{
		ID:        s.agentID,
		Name:      in.Name,
		Area:      in.Area,
		Rating:    rating,
		Bio:       strPtr(in.Bio),
		ImageURL:  strPtr(in.ImageURL),
		UserID:    i64Ptr(in.UserID),
		CreatedAt: time.Now(),
	}
	s.agents[a.ID] = a
	return cloneAgent(a), nil
}

// GetDonations returns all donations in insertion order.
func (s *Store) GetDonations(_ context.Context) ([]domain.Donation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Donation, 0, len(s.donations))
	for id := int64(1); id <= s.donationID; id++ {
		if d, ok := s.donations[id]; ok {
			out = append(out, *cloneDonation(d))
		}
	}
	return out, nil
}

// CreateDonation appends a new pledge record.
func (s *Store) CreateDonation(_ context.Context, in domain.InsertDonation) (*domain.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.donationID++
	d := domain.Donation{
		ID:        s.donationID,
		DonorName: in.DonorName,
		Email:     in.Email,
		Amount:    in.Amount,
		Message:   strPtr(in.Message),
		CreatedAt: time.Now(),
	}
	s.donations[d.ID] = d
	return cloneDonation(d), nil
}

// productList collects matching products ordered by id. Ids are monotonic and
// never reused, so id order is insertion order.
func (s *Store) productList(match func(domain.Product) bool) []domain.Product {
	out := make([]domain.Product, 0, len(s.products))
	for id := int64(1); id <= s.productID; id++ {
		if p, ok := s.products[id]; ok && match(p) {
			out = append(out, *cloneProduct(p))
		}
	}
	return out
}

// The clone helpers hand callers their own copies. The store owns the
// canonical records; nothing mutable leaks across the storage boundary.

func cloneUser(u domain.User) *domain.User {
	u.Name = strPtr(u.Name)
	return &u
}

func cloneProduct(p domain.Product) *domain.Product {
	p.DonorID = i64Ptr(p.DonorID)
	p.ImageURL = strPtr(p.ImageURL)
	return &p
}

func cloneAgent(a domain.Agent) *domain.Agent {
	a.Bio = strPtr(a.Bio)
	a.ImageURL = strPtr(a.ImageURL)
	a.UserID = i64Ptr(a.UserID)
	return &a
}

func cloneDonation(d domain.Donation) *domain.Donation {
	d.Message = strPtr(d.Message)
	return &d
}

func strPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func i64Ptr(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
