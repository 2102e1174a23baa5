package services

import (
	"context"

	"github.com/bizfolio/portal_backend/internal/core/domain"
	"github.com/bizfolio/portal_backend/internal/dto"
)

// OrderSvcFacade defines the order tracking operations of the customer portal.
type OrderSvcFacade interface {
	// CreateOrder records a new order for the user (checkout handoff).
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest, userID string) (*domain.Order, error)

	// GetOrder retrieves an order, enforcing that it belongs to the
	// requesting user unless that user is an admin.
	GetOrder(ctx context.Context, orderID string, requestingUser *domain.User) (*domain.Order, error)

	// ListUserOrders retrieves a page of the user's orders, newest first.
	ListUserOrders(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Order, *string, error)
}
