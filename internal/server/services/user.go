// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and issuing session tokens.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"braindash/internal/common"
	"braindash/internal/server/auth"
	"braindash/internal/server/config"
	"braindash/internal/server/repositories/repomanager"
	"database/sql"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt work factor for stored password hashes.
const passwordHashCost = 12

// AuthResult bundles a freshly issued session token with the account's
// username.
type AuthResult struct {
	Token    string
	Username string
}

// UserService provides authentication-related operations:
//   - Register: create accounts and mint a first token
//   - Login: verify credentials and mint tokens
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register hashes the password, persists a new account, and returns a signed
// token. A taken username yields common.ErrorConflict regardless of password.
func (s *UserService) Register(ctx context.Context, username, password string) (*AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		// bcrypt caps input at 72 bytes; a longer password is the caller's
		// fault, not a server fault.
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, common.ErrorBadRequest
		}
		return nil, common.ErrorInternal
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, username, string(hash))
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.issueToken(user.ID, user.Username)
}

// Login verifies the credentials and returns a signed token. A missing
// account and a wrong password both collapse to common.ErrorUnauthorized so
// callers cannot enumerate usernames.
func (s *UserService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, common.ErrorUnauthorized
	}

	return s.issueToken(user.ID, user.Username)
}

func (s *UserService) issueToken(userID int64, username string) (*AuthResult, error) {
	token, err := auth.GenerateToken(userID, username, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &AuthResult{Token: token, Username: username}, nil
}
