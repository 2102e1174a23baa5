package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bizfolio/portal_backend/internal/apperrors"
	"github.com/bizfolio/portal_backend/internal/core/domain"
	portsrepo "github.com/bizfolio/portal_backend/internal/core/ports/repositories"
	portssvc "github.com/bizfolio/portal_backend/internal/core/ports/services"
	"github.com/bizfolio/portal_backend/internal/dto"
)

const (
	defaultOrderPageLimit = 20
	maxOrderPageLimit     = 100
)

// orderService implements order creation and tracking.
type orderService struct {
	BaseService
	orderRepo portsrepo.OrderRepositoryFacade
	now       func() time.Time
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// NewOrderService creates a new order service.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade) portssvc.OrderSvcFacade {
	return &orderService{
		orderRepo: orderRepo,
		now:       time.Now,
	}
}

// CreateOrder records a new order for the user. New orders always write the
// total_amount column; the other two amount columns exist only for rows the
// older checkouts wrote.
func (s *orderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest, userID string) (*domain.Order, error) {
	if req.TotalAmount.IsNegative() {
		return nil, apperrors.NewBadRequestError("totalAmount must not be negative")
	}

	now := s.now().UTC()
	total := req.TotalAmount
	order := domain.Order{
		OrderID:       uuid.NewString(),
		UserID:        userID,
		Status:        domain.OrderPending,
		OrderDate:     now,
		ProductName:   req.ProductName,
		Quantity:      req.Quantity,
		DesignFileURL: req.DesignFileURL,
		TotalAmount:   &total,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		s.LogError(ctx, err, "Failed to save order")
		return nil, apperrors.NewInternalServerError("failed to save order")
	}

	s.LogInfo(ctx, "Order created", "order_id", order.OrderID)
	return &order, nil
}

// GetOrder retrieves an order. Customers see only their own orders; admins
// see everything.
func (s *orderService) GetOrder(ctx context.Context, orderID string, requestingUser *domain.User) (*domain.Order, error) {
	if requestingUser == nil {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != requestingUser.UserID && !requestingUser.IsAdmin {
		s.LogWarn(ctx, "Order access denied", "order_id", orderID, "requesting_user_id", requestingUser.UserID)
		return nil, apperrors.ErrForbidden
	}

	return order, nil
}

// ListUserOrders retrieves a page of the user's orders, newest first.
func (s *orderService) ListUserOrders(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Order, *string, error) {
	if limit <= 0 {
		limit = defaultOrderPageLimit
	}
	if limit > maxOrderPageLimit {
		limit = maxOrderPageLimit
	}

	orders, token, err := s.orderRepo.ListOrdersByUser(ctx, userID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders", "user_id", userID)
		return nil, nil, err
	}
	return orders, token, nil
}
