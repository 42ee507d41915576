package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"wastenot/internal/domain"
	"wastenot/internal/middleware"
)

type createAgentRequest struct {
	Name     string   `json:"name"`
	Area     string   `json:"area"`
	Rating   *float64 `json:"rating"`
	Bio      *string  `json:"bio"`
	ImageURL *string  `json:"image_url"`
}

// AgentsList returns every volunteer profile.
func (a *App) AgentsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Store.GetAgents(r.Context())
	if err != nil {
		a.storageError(w, r, err, "get_agents")
		return
	}
	a.json(w, http.StatusOK, toAgentDTOs(items))
}

// AgentsGet returns one profile by id.
func (a *App) AgentsGet(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	agent, err := a.Store.GetAgentByID(r.Context(), id)
	if err != nil {
		a.storageError(w, r, err, "get_agent")
		return
	}
	if agent == nil {
		a.error(w, http.StatusNotFound, "not_found", "agent not found")
		return
	}
	a.json(w, http.StatusOK, toAgentDTO(agent))
}

// AgentsCreate registers a volunteer profile owned by the caller. Ratings
// outside [0, 5] are rejected; a missing rating gets the storage default.
func (a *App) AgentsCreate(w http.ResponseWriter, r *http.Request) {
	var req createAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Area) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "name and area are required")
		return
	}
	if req.Rating != nil && (*req.Rating < 0 || *req.Rating > 5) {
		a.error(w, http.StatusBadRequest, "bad_request", "rating must be between 0 and 5")
		return
	}

	callerID := middleware.UserIDFromContext(r.Context())
	agent, err := a.Store.CreateAgent(r.Context(), domain.InsertAgent{
		Name:     req.Name,
		Area:     req.Area,
		Rating:   req.Rating,
		Bio:      req.Bio,
		ImageURL: req.ImageURL,
		UserID:   &callerID,
	})
	if err != nil {
		a.storageError(w, r, err, "create_agent")
		return
	}
	a.json(w, http.StatusCreated, toAgentDTO(agent))
}
