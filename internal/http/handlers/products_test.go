package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductsMutationsRequireSession(t *testing.T) {
	h, _ := newTestServer(t)

	rr := doJSON(t, h, http.MethodPost, "/v1/products", map[string]any{
		"name": "Lamp", "description": "d", "category": "Electronics",
	})
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = doJSON(t, h, http.MethodPatch, "/v1/products/1", map[string]any{"category": "Books"})
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = doJSON(t, h, http.MethodDelete, "/v1/products/1", nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestProductCreateDefaultsDonorAndAvailability(t *testing.T) {
	h, _ := newTestServer(t)
	cookie, userID := register(t, h, "alice")

	rr := doJSON(t, h, http.MethodPost, "/v1/products", map[string]any{
		"name":        "Lamp",
		"description": "Works fine",
		"category":    "Electronics",
	}, cookie)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	p := decode[map[string]any](t, rr)
	require.Equal(t, true, p["is_available"])
	require.Equal(t, float64(userID), p["donor_id"], "donor defaults to the caller")
}

func TestProductReadRoutes(t *testing.T) {
	h, _ := newTestServer(t)
	cookie, _ := register(t, h, "alice")

	for _, category := range []string{"Electronics", "Books", "Electronics"} {
		rr := doJSON(t, h, http.MethodPost, "/v1/products", map[string]any{
			"name": "Item", "description": "d", "category": category,
		}, cookie)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr := doJSON(t, h, http.MethodGet, "/v1/products", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, decode[[]map[string]any](t, rr), 3)

	rr = doJSON(t, h, http.MethodGet, "/v1/products/category/Electronics", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, decode[[]map[string]any](t, rr), 2)

	rr = doJSON(t, h, http.MethodGet, "/v1/products/1", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/v1/products/99", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/v1/products/banana", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestProductPartialUpdate(t *testing.T) {
	h, _ := newTestServer(t)
	cookie, _ := register(t, h, "alice")

	rr := doJSON(t, h, http.MethodPost, "/v1/products", map[string]any{
		"name": "Box of Novels", "description": "15 paperbacks", "category": "Misc",
	}, cookie)
	require.Equal(t, http.StatusCreated, rr.Code)
	created := decode[map[string]any](t, rr)
	id := int64(created["id"].(float64))

	rr = doJSON(t, h, http.MethodPatch, fmt.Sprintf("/v1/products/%d", id), map[string]any{
		"category": "Books",
	}, cookie)
	require.Equal(t, http.StatusOK, rr.Code)

	updated := decode[map[string]any](t, rr)
	require.Equal(t, "Books", updated["category"])
	require.Equal(t, created["name"], updated["name"])
	require.Equal(t, created["description"], updated["description"])
	require.Equal(t, created["is_available"], updated["is_available"])
}

func TestProductOwnershipEnforced(t *testing.T) {
	h, _ := newTestServer(t)
	owner, _ := register(t, h, "alice")
	intruder, _ := register(t, h, "mallory")

	rr := doJSON(t, h, http.MethodPost, "/v1/products", map[string]any{
		"name": "Lamp", "description": "d", "category": "Electronics",
	}, owner)
	require.Equal(t, http.StatusCreated, rr.Code)
	id := int64(decode[map[string]any](t, rr)["id"].(float64))

	rr = doJSON(t, h, http.MethodPatch, fmt.Sprintf("/v1/products/%d", id), map[string]any{
		"category": "Books",
	}, intruder)
	require.Equal(t, http.StatusForbidden, rr.Code)

	rr = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/v1/products/%d", id), nil, intruder)
	require.Equal(t, http.StatusForbidden, rr.Code)

	rr = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/v1/products/%d", id), nil, owner)
	require.Equal(t, http.StatusNoContent, rr.Code)
}

func TestProductDeleteTwice(t *testing.T) {
	h, _ := newTestServer(t)
	cookie, _ := register(t, h, "alice")

	rr := doJSON(t, h, http.MethodPost, "/v1/products", map[string]any{
		"name": "Lamp", "description": "d", "category": "Electronics",
	}, cookie)
	require.Equal(t, http.StatusCreated, rr.Code)
	id := int64(decode[map[string]any](t, rr)["id"].(float64))

	rr = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/v1/products/%d", id), nil, cookie)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, h, http.MethodGet, fmt.Sprintf("/v1/products/%d", id), nil)
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/v1/products/%d", id), nil, cookie)
	require.Equal(t, http.StatusNotFound, rr.Code)
}
