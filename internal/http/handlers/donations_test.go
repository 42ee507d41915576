package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDonationCreateIsPublic(t *testing.T) {
	h, _ := newTestServer(t)

	rr := doJSON(t, h, http.MethodPost, "/v1/donations", map[string]any{
		"donor_name": "Jane",
		"email":      "jane@example.com",
		"amount":     25.5,
		"message":    "keep it up",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	d := decode[map[string]any](t, rr)
	require.Equal(t, 25.5, d["amount"])
	require.Equal(t, "Jane", d["donor_name"])

	rr = doJSON(t, h, http.MethodGet, "/v1/donations", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, decode[[]map[string]any](t, rr), 1)
}

func TestDonationValidation(t *testing.T) {
	h, _ := newTestServer(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"zero amount", map[string]any{"donor_name": "J", "email": "j@x.com", "amount": 0}},
		{"negative amount", map[string]any{"donor_name": "J", "email": "j@x.com", "amount": -5}},
		{"missing name", map[string]any{"email": "j@x.com", "amount": 10}},
		{"missing email", map[string]any{"donor_name": "J", "amount": 10}},
		{"bad email", map[string]any{"donor_name": "J", "email": "nope", "amount": 10}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := doJSON(t, h, http.MethodPost, "/v1/donations", tc.body)
			require.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}
