package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus tracks an order through production and delivery.
type OrderStatus string

const (
	OrderPending      OrderStatus = "PENDING"
	OrderInProduction OrderStatus = "IN_PRODUCTION"
	OrderShipped      OrderStatus = "SHIPPED"
	OrderDelivered    OrderStatus = "DELIVERED"
	OrderCancelled    OrderStatus = "CANCELLED"
)

// Order is a customer order. The amount lives in one of three legacy
// columns (TotalAmount, Amount, Price) depending on which generation of the
// checkout wrote the row; revenue summation resolves them in that priority
// order, first positive value wins.
type Order struct {
	OrderID       string           `json:"orderID"` // Primary Key (UUID)
	UserID        string           `json:"userID"`
	Status        OrderStatus      `json:"status"`
	OrderDate     time.Time        `json:"orderDate"`
	ProductName   string           `json:"productName"`
	Quantity      int              `json:"quantity"`
	DesignFileURL string           `json:"designFileURL,omitempty"`
	TotalAmount   *decimal.Decimal `json:"totalAmount,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	AuditFields
}
