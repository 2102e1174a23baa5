package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/bizfolio/portal_backend/internal/apperrors"
	"github.com/bizfolio/portal_backend/internal/core/domain"
	portssvc "github.com/bizfolio/portal_backend/internal/core/ports/services"
	"github.com/bizfolio/portal_backend/internal/platform/config"
	"github.com/bizfolio/portal_backend/internal/utils"
)

// tokenService issues application JWTs.
type tokenService struct {
	cfg *config.Config
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, expiryTime, nil
}

// googleOAuthHandlerService implements the Google sign-in flow.
type googleOAuthHandlerService struct {
	BaseService
	cfg *config.Config

	// oauth2Config is configured at initialization time
	oauth2Config *oauth2.Config
}

var _ portssvc.GoogleOAuthHandlerSvcFacade = (*googleOAuthHandlerService)(nil)

// NewGoogleOAuthHandlerService creates a new Google OAuth handler service.
func NewGoogleOAuthHandlerService(cfg *config.Config) portssvc.GoogleOAuthHandlerSvcFacade {
	return &googleOAuthHandlerService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// GenerateStateString creates a secure random string used as a CSRF token for
// the OAuth flow.
func (s *googleOAuthHandlerService) GenerateStateString(ctx context.Context) (string, error) {
	state, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate OAuth state string")
		return "", apperrors.NewInternalServerError("failed to initiate sign-in")
	}
	return state, nil
}

// GetAuthCodeURL builds the Google consent page URL for the given state.
func (s *googleOAuthHandlerService) GetAuthCodeURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCodeForToken exchanges an OAuth authorization code for Google tokens.
func (s *googleOAuthHandlerService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to exchange authorization code")
		return nil, apperrors.NewGatewayTimeoutError("failed to exchange authorization code with Google")
	}
	return token, nil
}

// ValidateGoogleIDToken verifies the ID token's signature and audience and
// returns its payload.
func (s *googleOAuthHandlerService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if idTokenString == "" {
		return nil, apperrors.NewBadRequestError("ID token is required")
	}

	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		s.LogWarn(ctx, "Google ID token validation failed", "error", err.Error())
		return nil, apperrors.NewUnauthorizedError("invalid Google ID token")
	}
	return payload, nil
}
