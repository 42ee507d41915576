package handlers

import (
	"time"

	"wastenot/internal/domain"
)

// Wire shapes mirror the entity records minus server-internal fields; the
// user DTO never carries the password.

type userDTO struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserDTO(u *domain.User) userDTO {
	return userDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

type productDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	DonorID     *int64    `json:"donor_id"`
	ImageURL    *string   `json:"image_url"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

func toProductDTO(p *domain.Product) productDTO {
	return productDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		DonorID:     p.DonorID,
		ImageURL:    p.ImageURL,
		IsAvailable: p.IsAvailable,
		CreatedAt:   p.CreatedAt,
	}
}

func toProductDTOs(items []domain.Product) []productDTO {
	out := make([]productDTO, 0, len(items))
	for i := range items {
		out = append(out, toProductDTO(&items[i]))
	}
	return out
}

type agentDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Area      string    `json:"area"`
	Rating    float64   `json:"rating"`
	Bio       *string   `json:"bio"`
	ImageURL  *string   `json:"image_url"`
	UserID    *int64    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toAgentDTO(a *domain.Agent) agentDTO {
	return agentDTO{
		ID:        a.ID,
		Name:      a.Name,
		Area:      a.Area,
		Rating:    a.Rating,
		Bio:       a.Bio,
		ImageURL:  a.ImageURL,
		UserID:    a.UserID,
		CreatedAt: a.CreatedAt,
	}
}

func toAgentDTOs(items []domain.Agent) []agentDTO {
	out := make([]agentDTO, 0, len(items))
	for i := range items {
		out = append(out, toAgentDTO(&items[i]))
	}
	return out
}

type donationDTO struct {
	ID        int64     `json:"id"`
	DonorName string    `json:"donor_name"`
	Email     string    `json:"email"`
	Amount    float64   `json:"amount"`
	Message   *string   `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func toDonationDTO(d *domain.Donation) donationDTO {
	return donationDTO{
		ID:        d.ID,
		DonorName: d.DonorName,
		Email:     d.Email,
		Amount:    d.Amount,
		Message:   d.Message,
		CreatedAt: d.CreatedAt,
	}
}

func toDonationDTOs(items []domain.Donation) []donationDTO {
	out := make([]donationDTO, 0, len(items))
	for i := range items {
		out = append(out, toDonationDTO(&items[i]))
	}
	return out
}
