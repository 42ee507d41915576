package domain

import "time"

// Donation is a monetary pledge. Records are append-only: no update or delete
// operation exists anywhere in the system.
type Donation struct {
	ID        int64
	DonorName string
	Email     string
	Amount    float64
	Message   *string
	CreatedAt time.Time
}

// InsertDonation is the caller-supplied subset of Donation. Amount positivity
// is validated at the boundary, not re-checked by storage.
type InsertDonation struct {
	DonorName string
	Email     string
	Amount    float64
	Message   *string
}
