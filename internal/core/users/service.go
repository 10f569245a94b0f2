package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Directory is the account-resolution surface the Post Engine depends on.
// It validates that a username maps to a real account.
type Directory interface {
	// Resolve looks up an account by username
	// Returns ErrAccountNotFound if the username is not registered
	Resolve(ctx context.Context, username string) (*Account, error)
}

// Service provides account resolution and credential verification
type Service interface {
	Directory

	// Authenticate verifies a username/password pair
	// Returns ErrInvalidCredentials on mismatch or unknown username
	Authenticate(ctx context.Context, username, password string) (*Account, error)

	// Register creates a new account with a bcrypt-hashed password
	Register(ctx context.Context, username, password string) (*Account, error)
}

type userService struct {
	repo   Repository
	logger *slog.Logger
}

// NewUserService creates a new account service instance
func NewUserService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{repo: repo, logger: logger}
}

func (s *userService) Resolve(ctx context.Context, username string) (*Account, error) {
	if username == "" {
		return nil, ErrAccountNotFound
	}
	return s.repo.GetByUsername(ctx, username)
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*Account, error) {
	hash, err := s.repo.GetCredentials(ctx, username)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			// Same outcome as a wrong password so callers can't probe usernames
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	s.logger.Info("user authenticated", "username", username)
	return account, nil
}

func (s *userService) Register(ctx context.Context, username, password string) (*Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("username is required")
	}
	if password == "" {
		return nil, errors.New("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account, err := s.repo.Create(ctx, username, string(hash))
	if err != nil {
		return nil, err
	}

	s.logger.Info("account registered", "username", username)
	return account, nil
}
