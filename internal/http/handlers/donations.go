package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"wastenot/internal/domain"
)

type createDonationRequest struct {
	DonorName string  `json:"donor_name"`
	Email     string  `json:"email"`
	Amount    float64 `json:"amount"`
	Message   *string `json:"message"`
}

// DonationsList returns every pledge in insertion order.
func (a *App) DonationsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Store.GetDonations(r.Context())
	if err != nil {
		a.storageError(w, r, err, "get_donations")
		return
	}
	a.json(w, http.StatusOK, toDonationDTOs(items))
}

// DonationsCreate records a pledge. Donations are open to anonymous visitors;
// the donor name is free text and not linked to an account.
func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var req createDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	req.DonorName = strings.TrimSpace(req.DonorName)
	req.Email = strings.TrimSpace(req.Email)
	if req.DonorName == "" || req.Email == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "donor_name and email are required")
		return
	}
	if !strings.Contains(req.Email, "@") {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid email address")
		return
	}
	if req.Amount <= 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "amount must be positive")
		return
	}

	d, err := a.Store.CreateDonation(r.Context(), domain.InsertDonation{
		DonorName: req.DonorName,
		Email:     req.Email,
		Amount:    req.Amount,
		Message:   req.Message,
	})
	if err != nil {
		a.storageError(w, r, err, "create_donation")
		return
	}
	a.json(w, http.StatusCreated, toDonationDTO(d))
}
