package services

// ServiceContainer holds all service facades, wired once at startup and
// handed to the route registration.
type ServiceContainer struct {
	Finance            FinanceSvcFacade
	Ledger             LedgerSvcFacade
	Order              OrderSvcFacade
	User               UserSvcFacade
	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
}
