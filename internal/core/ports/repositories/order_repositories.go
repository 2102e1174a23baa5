package repositories

import (
	"context"
	"time"

	"github.com/bizfolio/portal_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OrderReader defines read operations for customer orders.
type OrderReader interface {
	// FindOrderByID retrieves a specific order by its unique identifier.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrdersByUser retrieves a paginated list of a user's orders, newest
	// first, using token-based pagination. It returns the orders, a token for
	// the next page, and an error.
	ListOrdersByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Order, *string, error)

	// SumOrdersRevenueInRange totals order revenue for the inclusive date
	// range across ALL users. The dashboard treats revenue as platform-wide
	// even when the rest of a summary is user-scoped; do not add a user
	// filter here without product sign-off.
	SumOrdersRevenueInRange(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}

// OrderWriter defines write operations for customer orders.
type OrderWriter interface {
	SaveOrder(ctx context.Context, order domain.Order) error
}

// OrderRepositoryFacade combines all order repository interfaces.
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
