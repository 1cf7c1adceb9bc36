package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jonathan/chief-of-staff/internal/config"
	"github.com/jonathan/chief-of-staff/internal/db"
	"github.com/jonathan/chief-of-staff/internal/types"
)

// memStore is an in-memory UserStore for tests.
type memStore struct {
	mu    sync.Mutex
	users map[string]*db.User
}

func newMemStore() *memStore {
	return &memStore{users: make(map[string]*db.User)}
}

func (m *memStore) CreateUser(_ context.Context, name, email, passwordHash string) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[email]; exists {
		return nil, db.ErrEmailTaken
	}
	user := &db.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	m.users[email] = user
	return user, nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, exists := m.users[email]
	if !exists {
		return nil, db.ErrNotFound
	}
	return user, nil
}

// testPasswordConfig uses the minimum bcrypt cost to keep tests fast.
func testPasswordConfig() *config.PasswordConfig {
	return &config.PasswordConfig{BcryptCost: bcrypt.MinCost}
}

func registerRequest() *types.RegisterRequest {
	return &types.RegisterRequest{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "correct horse battery",
	}
}

func TestUserService_Register(t *testing.T) {
	store := newMemStore()
	service := NewUserService(store, testPasswordConfig())

	user, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.Equal(t, "Alex", user.Name)
	assert.Equal(t, "alex@example.com", user.Email)
	assert.NotEqual(t, uuid.Nil, user.ID)

	// The stored hash verifies against the original password.
	stored := store.users["alex@example.com"]
	assert.NotEqual(t, "correct horse battery", stored.PasswordHash)
	assert.True(t, testPasswordConfig().VerifyPassword("correct horse battery", stored.PasswordHash))
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	service := NewUserService(newMemStore(), testPasswordConfig())

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = service.Register(context.Background(), registerRequest())
	var emailErr *ErrEmailAlreadyExists
	require.ErrorAs(t, err, &emailErr)
	assert.Equal(t, "alex@example.com", emailErr.Email)
	assert.Equal(t, http.StatusConflict, HTTPStatus(err))
}

func TestUserService_Login(t *testing.T) {
	service := NewUserService(newMemStore(), testPasswordConfig())

	registered, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	user, err := service.Login(context.Background(), &types.LoginRequest{
		Email:    "alex@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	service := NewUserService(newMemStore(), testPasswordConfig())
	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	tests := []struct {
		name string
		req  *types.LoginRequest
	}{
		{"wrong password", &types.LoginRequest{Email: "alex@example.com", Password: "wrong"}},
		{"unknown email", &types.LoginRequest{Email: "nobody@example.com", Password: "correct horse battery"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(context.Background(), tt.req)
			var credsErr *ErrInvalidCredentials
			require.ErrorAs(t, err, &credsErr)
			assert.Equal(t, http.StatusUnauthorized, HTTPStatus(err))
		})
	}
}

func TestHTTPStatus_UnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}
