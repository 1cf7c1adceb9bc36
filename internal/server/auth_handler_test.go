package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/chief-of-staff/internal/config"
	"github.com/jonathan/chief-of-staff/internal/types"
)

// newAuthMux wires the auth handler onto a mux backed by an in-memory
// store, returning the JWT service so tests can inspect issued tokens.
func newAuthMux(t *testing.T) (*http.ServeMux, *JWTService) {
	t.Helper()

	jwtService := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
	userService := NewUserService(newMemStore(), testPasswordConfig())
	handler := NewAuthHandler(userService, jwtService)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register", handler.Register)
	mux.HandleFunc("POST /auth/login", handler.Login)
	return mux, jwtService
}

const registerBody = `{"name": "Alex", "email": "alex@example.com", "password": "correct horse battery"}`

func TestAuthHandler_Register(t *testing.T) {
	mux, jwtService := newAuthMux(t)

	rec := doRequest(mux, http.MethodPost, "/auth/register", registerBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.User)
	assert.Equal(t, "alex@example.com", resp.User.Email)

	claims, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	mux, _ := newAuthMux(t)

	rec := doRequest(mux, http.MethodPost, "/auth/register", registerBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(mux, http.MethodPost, "/auth/register", registerBody)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, decodeError(t, rec), "email already registered")
}

func TestAuthHandler_Register_BadRequests(t *testing.T) {
	mux, _ := newAuthMux(t)

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"malformed JSON", `{"name": `, "invalid request body"},
		{"missing name", `{"email": "a@example.com", "password": "long enough pw"}`, "validation error: Name - required"},
		{"bad email", `{"name": "Alex", "email": "not-an-email", "password": "long enough pw"}`, "validation error: Email - email"},
		{"short password", `{"name": "Alex", "email": "a@example.com", "password": "short"}`, "validation error: Password - min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(mux, http.MethodPost, "/auth/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec))
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	mux, jwtService := newAuthMux(t)

	rec := doRequest(mux, http.MethodPost, "/auth/register", registerBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(mux, http.MethodPost, "/auth/login",
		`{"email": "alex@example.com", "password": "correct horse battery"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	_, err := jwtService.ValidateToken(resp.Token)
	assert.NoError(t, err)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	mux, _ := newAuthMux(t)

	rec := doRequest(mux, http.MethodPost, "/auth/register", registerBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(mux, http.MethodPost, "/auth/login",
		`{"email": "alex@example.com", "password": "not the password"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid email or password", decodeError(t, rec))
}

func TestAuthHandler_Login_MissingEmail(t *testing.T) {
	mux, _ := newAuthMux(t)

	rec := doRequest(mux, http.MethodPost, "/auth/login", `{"password": "whatever"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation error: Email - required", decodeError(t, rec))
}
