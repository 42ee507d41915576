package memory

import (
	"time"

	"wastenot/internal/domain"
)

// seed populates the demo data set: one user, four products across four
// categories and three agents with distinct ratings and service areas, all
// referencing the seed user. The seed user's password is already a bcrypt
// hash (of "wastenot"), matching what the registration route would store.
func (s *Store) seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	s.userID++
	owner := domain.User{
		ID:        s.userID,
		Username:  "johndoe",
		Email:     "john@example.com",
		Password:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Name:      ptr("John Doe"),
		CreatedAt: now,
	}
	s.users[owner.ID] = owner

	products := []domain.Product{
		{
			Name:        "Modern Wooden Chair",
			Description: "Lightly used wooden chair, perfect for a home office or dining room.",
			Category:    "Furniture",
			ImageURL:    ptr("https://images.unsplash.com/photo-1555041469-a586c61ea9bc"),
		},
		{
			Name:        "Coffee Maker",
			Description: "Working coffee maker, only 1 year old. Makes great coffee!",
			Category:    "Kitchen",
			ImageURL:    ptr("https://images.unsplash.com/photo-1588872657578-7efd1f1555ed"),
		},
		{
			Name:        "Refurbished Laptop",
			Description: "Working laptop with new battery. Great for basic tasks and browsing.",
			Category:    "Electronics",
			ImageURL:    ptr("https://images.unsplash.com/photo-1603302576837-37561b2e2302"),
		},
		{
			Name:        "Fiction Book Collection",
			Description: "Collection of 15 contemporary fiction novels in good condition.",
			Category:    "Books",
			ImageURL:    ptr("https://images.unsplash.com/photo-1544947950-fa07a98d237f"),
		},
	}
	for _, p := range products {
		s.productID++
		p.ID = s.productID
		p.DonorID = ptr(owner.ID)
		p.IsAvailable = true
		p.CreatedAt = now
		s.products[p.ID] = p
	}

	agents := []domain.Agent{
		{
			Name:   "Sarah Johnson",
			Area:   "Downtown Area",
			Rating: 4.5,
			Bio:    ptr("Sarah has been volunteering with us for 3 years and has helped distribute over 500 items to those in need."),
		},
		{
			Name:   "Michael Rodriguez",
			Area:   "West Side",
			Rating: 4.0,
			Bio:    ptr("Michael joined our team last year and specializes in furniture and large item pickups and deliveries."),
		},
		{
			Name:   "Aisha Patel",
			Area:   "North District",
			Rating: 5.0,
			Bio:    ptr("Aisha coordinates our clothing and small item distribution network and works with local shelters."),
		},
	}
	for _, a := range agents {
		s.agentID++
		a.ID = s.agentID
		a.UserID = ptr(owner.ID)
		a.CreatedAt = now
		s.agents[a.ID] = a
	}
}

func ptr[T any](v T) *T { return &v }
