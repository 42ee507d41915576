package domain

import "time"

// DefaultAgentRating applies when an agent is created without a rating.
const DefaultAgentRating = 5.0

// Agent is a volunteer profile.
type Agent struct {
	ID        int64
	Name      string
	Area      string
	Rating    float64
	Bio       *string
	ImageURL  *string
	UserID    *int64
	CreatedAt time.Time
}

// InsertAgent is the caller-supplied subset of Agent. A nil Rating falls back
// to DefaultAgentRating.
type InsertAgent struct {
	Name     string
	Area     string
	Rating   *float64
	Bio      *string
	ImageURL *string
	UserID   *int64
}
