package domain

import "time"

// User represents a registered account. The password field holds whatever
// opaque credential the caller supplied at creation time (the route layer
// stores bcrypt hashes, never plaintext).
type User struct {
	ID        int64
	Username  string
	Email     string
	Password  string
	Name      *string
	CreatedAt time.Time
}

// InsertUser is the caller-supplied subset of User; id and created_at are
// assigned by storage.
type InsertUser struct {
	Username string
	Email    string
	Password string
	Name     *string
}
