package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"wastenot/internal/domain"
	"wastenot/internal/middleware"
)

type registerRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates an account and opens a session. The username/email
// pre-check reads before writing; the postgres backend's unique constraints
// back it up, the memory backend relies on it entirely.
func (a *App) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "username, email and password are required")
		return
	}
	if !strings.Contains(req.Email, "@") {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid email address")
		return
	}
	if len(req.Password) < 6 {
		a.error(w, http.StatusBadRequest, "bad_request", "password must be at least 6 characters")
		return
	}

	existing, err := a.Store.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		a.storageError(w, r, err, "get_user_by_username")
		return
	}
	if existing != nil {
		a.error(w, http.StatusConflict, "conflict", "username already taken")
		return
	}
	existing, err = a.Store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		a.storageError(w, r, err, "get_user_by_email")
		return
	}
	if existing != nil {
		a.error(w, http.StatusConflict, "conflict", "email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		a.Logger.Error().Err(err).Msg("hash password failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create account")
		return
	}

	user, err := a.Store.CreateUser(r.Context(), domain.InsertUser{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
		Name:     req.Name,
	})
	if err != nil {
		a.storageError(w, r, err, "create_user")
		return
	}

	token := a.Sessions.Create(user.ID)
	a.setSessionCookie(w, token)
	a.json(w, http.StatusCreated, toUserDTO(user))
}

// Login verifies the bcrypt hash and opens a session. A bad username and a
// bad password answer identically.
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Username == "" || req.Password == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "username and password are required")
		return
	}

	user, err := a.Store.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		a.storageError(w, r, err, "get_user_by_username")
		return
	}
	if user == nil {
		a.error(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		a.error(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
		return
	}

	token := a.Sessions.Create(user.ID)
	a.setSessionCookie(w, token)
	a.json(w, http.StatusOK, toUserDTO(user))
}

// Logout destroys the session if one is presented. Always answers 204.
func (a *App) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		a.Sessions.Destroy(cookie.Value)
	}
	a.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// Me resolves the session to the current user.
func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	user, err := a.Store.GetUser(r.Context(), userID)
	if err != nil {
		a.storageError(w, r, err, "get_user")
		return
	}
	if user == nil {
		// Session outlived the account; treat as logged out.
		a.clearSessionCookie(w)
		a.error(w, http.StatusUnauthorized, "unauthorized", "account no longer exists")
		return
	}
	a.json(w, http.StatusOK, toUserDTO(user))
}
