package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"wastenot/internal/http/handlers"
	"wastenot/internal/http/httpapi"
	"wastenot/internal/session"
	"wastenot/internal/storage/memory"
)

// newTestServer wires the real router over an empty memory store, the same
// composition cmd/api performs minus the listener.
func newTestServer(t *testing.T) (http.Handler, *memory.Store) {
	t.Helper()

	store := memory.NewEmpty()
	sessions := session.NewMemoryStore(time.Hour, time.Hour)
	t.Cleanup(sessions.Close)

	app := handlers.NewApp(store, sessions, zerolog.Nop(), false)
	router := httpapi.NewRouter(app, sessions, httpapi.Options{
		DefaultLocale: "en",
	})
	return router, store
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&v))
	return v
}

// register creates an account and returns its session cookie and id.
func register(t *testing.T, h http.Handler, username string) (*http.Cookie, int64) {
	t.Helper()

	rr := doJSON(t, h, http.MethodPost, "/v1/auth/register", map[string]any{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var cookie *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == "wastenot_session" {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "registration must set a session cookie")

	user := decode[struct {
		ID int64 `json:"id"`
	}](t, rr)
	return cookie, user.ID
}
