package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"wastenot/internal/domain"
	"wastenot/internal/middleware"
)

type createProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	DonorID     *int64  `json:"donor_id"`
	ImageURL    *string `json:"image_url"`
}

type updateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	ImageURL    *string `json:"image_url"`
	IsAvailable *bool   `json:"is_available"`
}

// ProductsList returns every listing in insertion order.
func (a *App) ProductsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Store.GetProducts(r.Context())
	if err != nil {
		a.storageError(w, r, err, "get_products")
		return
	}
	a.json(w, http.StatusOK, toProductDTOs(items))
}

// ProductsGet returns one listing by id.
func (a *App) ProductsGet(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	p, err := a.Store.GetProductByID(r.Context(), id)
	if err != nil {
		a.storageError(w, r, err, "get_product")
		return
	}
	if p == nil {
		a.error(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	a.json(w, http.StatusOK, toProductDTO(p))
}

// ProductsByCategory filters listings on an exact category match.
func (a *App) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	items, err := a.Store.GetProductsByCategory(r.Context(), category)
	if err != nil {
		a.storageError(w, r, err, "get_products_by_category")
		return
	}
	a.json(w, http.StatusOK, toProductDTOs(items))
}

// ProductsCreate adds a listing. The donor defaults to the authenticated
// caller when the payload names none; availability is forced true by storage.
func (a *App) ProductsCreate(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || strings.TrimSpace(req.Description) == "" || strings.TrimSpace(req.Category) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "name, description and category are required")
		return
	}

	donorID := req.DonorID
	if donorID == nil {
		callerID := middleware.UserIDFromContext(r.Context())
		donorID = &callerID
	}

	p, err := a.Store.CreateProduct(r.Context(), domain.InsertProduct{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		DonorID:     donorID,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		a.storageError(w, r, err, "create_product")
		return
	}
	a.json(w, http.StatusCreated, toProductDTO(p))
}

// ProductsUpdate merges a partial update. Only the recorded donor may modify
// a listing; listings without a donor are open to any authenticated user.
func (a *App) ProductsUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	if !a.authorizeProductMutation(w, r, id) {
		return
	}

	var req updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	p, err := a.Store.UpdateProduct(r.Context(), id, domain.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		a.storageError(w, r, err, "update_product")
		return
	}
	if p == nil {
		a.error(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	a.json(w, http.StatusOK, toProductDTO(p))
}

// ProductsDelete removes a listing, subject to the same ownership rule as
// updates.
func (a *App) ProductsDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	if !a.authorizeProductMutation(w, r, id) {
		return
	}

	deleted, err := a.Store.DeleteProduct(r.Context(), id)
	if err != nil {
		a.storageError(w, r, err, "delete_product")
		return
	}
	if !deleted {
		a.error(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// authorizeProductMutation answers the error response itself and reports
// whether the handler may proceed. A missing product passes here so the
// operation can produce its canonical 404.
func (a *App) authorizeProductMutation(w http.ResponseWriter, r *http.Request, id int64) bool {
	p, err := a.Store.GetProductByID(r.Context(), id)
	if err != nil {
		a.storageError(w, r, err, "get_product")
		return false
	}
	if p != nil && p.DonorID != nil && *p.DonorID != middleware.UserIDFromContext(r.Context()) {
		a.error(w, http.StatusForbidden, "forbidden", "only the donor may modify this listing")
		return false
	}
	return true
}

func (a *App) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid id")
		return 0, false
	}
	return id, true
}
