package dto

import (
	"time"

	"github.com/bizfolio/portal_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the checkout handoff payload.
type CreateOrderRequest struct {
	ProductName   string          `json:"productName" binding:"required"`
	Quantity      int             `json:"quantity" binding:"required,gt=0"`
	TotalAmount   decimal.Decimal `json:"totalAmount" binding:"required"`
	DesignFileURL string          `json:"designFileURL"`
}

// OrderResponse is the API shape of an order for the tracking view.
type OrderResponse struct {
	OrderID       string          `json:"orderID"`
	Status        string          `json:"status"`
	OrderDate     string          `json:"orderDate"`
	ProductName   string          `json:"productName"`
	Quantity      int             `json:"quantity"`
	DesignFileURL string          `json:"designFileURL,omitempty"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListOrdersResponse is a page of orders with an optional continuation token.
type ListOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToOrderResponse converts a domain Order to its response DTO. The displayed
// total resolves the legacy amount fields with the same first-positive rule
// revenue summation uses.
func ToOrderResponse(o *domain.Order) OrderResponse {
	total := decimal.Zero
	for _, candidate := range []*decimal.Decimal{o.TotalAmount, o.Amount, o.Price} {
		if candidate != nil && candidate.GreaterThan(decimal.Zero) {
			total = *candidate
			break
		}
	}
	return OrderResponse{
		OrderID:       o.OrderID,
		Status:        string(o.Status),
		OrderDate:     o.OrderDate.Format(dateOnly),
		ProductName:   o.ProductName,
		Quantity:      o.Quantity,
		DesignFileURL: o.DesignFileURL,
		Total:         total,
		CreatedAt:     o.CreatedAt,
	}
}

// ToListOrdersResponse converts a page of domain Orders to the response DTO.
func ToListOrdersResponse(orders []domain.Order, nextToken *string) ListOrdersResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return ListOrdersResponse{Orders: responses, NextToken: nextToken}
}
