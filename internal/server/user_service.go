package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/chief-of-staff/internal/config"
	"github.com/jonathan/chief-of-staff/internal/db"
	"github.com/jonathan/chief-of-staff/internal/types"
)

// UserStore is the subset of db.DB the user service needs. Tests
// substitute an in-memory implementation.
type UserStore interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
}

// UserService provides business logic for user authentication.
type UserService struct {
	store          UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies.
func NewUserService(store UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		store:          store,
		passwordConfig: passwordConfig,
	}
}

// apiUser converts a stored user to the API shape, dropping the hash.
func apiUser(u *db.User) *types.User {
	if u == nil {
		return nil
	}
	return &types.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// Register creates a new user with password authentication.
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, req.Name, req.Email, passwordHash)
	if errors.Is(err, db.ErrEmailTaken) {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return apiUser(user), nil
}

// Login authenticates a user and returns the user data.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, db.ErrNotFound) {
		// Generic error whether the email or the password was wrong.
		return nil, &ErrInvalidCredentials{}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !s.passwordConfig.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return apiUser(user), nil
}
