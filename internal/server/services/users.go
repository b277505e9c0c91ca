// Package services contains server-side business logic. This file implements
// UserService, which handles registration, credential verification, session
// token issuance, and profile lookups.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/workhive/jobboard/internal/common"
	"github.com/workhive/jobboard/internal/server/auth"
	"github.com/workhive/jobboard/internal/server/config"
	"github.com/workhive/jobboard/internal/server/models"
	"github.com/workhive/jobboard/internal/server/repositories/users"
)

// RegisterParams carries the registration input. Phone, City and Country are
// optional and default to the empty string.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Phone    string
	City     string
	Country  string
}

// UserProfile is the public projection of a user record. It never carries
// the password hash.
type UserProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and mint a session token
// - Profile: resolve a verified identity back to its stored record
type UserService struct {
	repo                  users.Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using the credential store and
// server config.
func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new user with a bcrypt-hashed password. The existence
// pre-check is an optimization only; the email unique index is what actually
// guarantees uniqueness, surfaced as common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, params RegisterParams) error {
	if params.Name == "" || params.Email == "" || params.Password == "" {
		return fmt.Errorf("%w: name, email and password are required", common.ErrorValidation)
	}

	_, err := s.repo.GetByEmail(ctx, params.Email)
	if err == nil {
		return common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return common.ErrorInternal
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return common.ErrorInternal
	}

	user := &models.User{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: hash,
		Phone:        params.Phone,
		City:         params.City,
		Country:      params.Country,
	}
	if _, err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// Login verifies the credentials and, on success, returns a session token
// and the public projection of the user. Unknown email and wrong password
// both yield common.ErrorInvalidCredentials so callers cannot enumerate
// accounts through the error.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *UserProfile, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorInvalidCredentials
		}
		return "", nil, common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", nil, common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Name, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, projectUser(user), nil
}

// Profile resolves a verified subject id to the stored user record.
// A malformed id yields common.ErrorInvalidID; a record deleted between
// token issuance and use yields common.ErrorNotFound.
func (s *UserService) Profile(ctx context.Context, userID string) (*UserProfile, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, common.ErrorInvalidID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return projectUser(user), nil
}

// projectUser strips the password hash and defaults absent fields so the
// caller never observes undefined values.
func projectUser(user *models.User) *UserProfile {
	createdAt := user.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return &UserProfile{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		City:      user.City,
		Country:   user.Country,
		CreatedAt: createdAt,
	}
}
