package services

import (
	"context"

	"github.com/bizfolio/portal_backend/internal/core/domain"
	"github.com/bizfolio/portal_backend/internal/dto"
)

// UserSvcFacade defines user account operations.
type UserSvcFacade interface {
	// RegisterUser creates a local (username/password) account.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// AuthenticateUser verifies a username/password pair and returns the user.
	// Returns apperrors.ErrUnauthorized on any credential mismatch.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// UpdateUser updates mutable profile fields of the given user.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)

	// DeleteUser soft deletes the given user.
	DeleteUser(ctx context.Context, userID string, deleterUserID string) error

	// FindOrCreateProviderUser returns the account linked to the external
	// provider subject, creating it on first sign-in.
	FindOrCreateProviderUser(ctx context.Context, provider domain.AuthProvider, providerUserID, email, name string) (*domain.User, error)
}
