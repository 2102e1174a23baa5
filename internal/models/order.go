package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Order mirrors the orders table. The three amount columns are a legacy of
// successive checkout generations; at most one is expected to be set per row
// but nothing in the schema enforces it.
type Order struct {
	OrderID       string              `db:"order_id"`
	UserID        string              `db:"user_id"`
	Status        string              `db:"status"`
	OrderDate     time.Time           `db:"order_date"`
	ProductName   string              `db:"product_name"`
	Quantity      int                 `db:"quantity"`
	DesignFileURL sql.NullString      `db:"design_file_url"`
	TotalAmount   decimal.NullDecimal `db:"total_amount"`
	Amount        decimal.NullDecimal `db:"amount"`
	Price         decimal.NullDecimal `db:"price"`
	AuditFields
}
