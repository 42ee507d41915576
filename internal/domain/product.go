package domain

import "time"

// Product is a donation listing.
type Product struct {
	ID          int64
	Name        string
	Description string
	Category    string
	DonorID     *int64
	ImageURL    *string
	IsAvailable bool
	CreatedAt   time.Time
}

// InsertProduct is the caller-supplied subset of Product. Availability is not
// part of it: storage forces IsAvailable to true on creation.
type InsertProduct struct {
	Name        string
	Description string
	Category    string
	DonorID     *int64
	ImageURL    *string
}

// ProductPatch carries a partial update. Nil fields are left untouched; set
// fields are merged onto the existing record without re-validation.
type ProductPatch struct {
	Name        *string
	Description *string
	Category    *string
	DonorID     *int64
	ImageURL    *string
	IsAvailable *bool
}
