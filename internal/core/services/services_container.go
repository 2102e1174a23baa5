package services

import (
	portsrepo "github.com/bizfolio/portal_backend/internal/core/ports/repositories"
	portssvc "github.com/bizfolio/portal_backend/internal/core/ports/services"
	"github.com/bizfolio/portal_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Ledger = NewLedgerService(repos.LedgerRepo)
	container.Order = NewOrderService(repos.OrderRepo)
	container.User = NewUserService(repos.UserRepo)

	// The finance aggregator reads the same stores the ledger and order
	// services write, plus the configured default mileage rate at request time.
	container.Finance = NewFinanceService(repos.LedgerRepo, repos.OrderRepo)

	container.TokenService = NewTokenService(cfg)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
