package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bizfolio/portal_backend/internal/apperrors"
	"github.com/bizfolio/portal_backend/internal/core/domain"
	portsrepo "github.com/bizfolio/portal_backend/internal/core/ports/repositories"
	"github.com/bizfolio/portal_backend/internal/models"
	"github.com/bizfolio/portal_backend/internal/utils/accounting"
	"github.com/bizfolio/portal_backend/internal/utils/mapping"
	"github.com/bizfolio/portal_backend/internal/utils/pagination"
)

// revenueCandidateColumns lists the legacy amount columns in resolution
// priority order. Successive checkout generations each wrote a different
// column; summation takes the first positive value per row.
var revenueCandidateColumns = []string{"total_amount", "amount", "price"}

type PgxOrderRepository struct {
	BaseRepository
}

// newPgxOrderRepository creates a new repository for order data.
func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

const orderColumns = `order_id, user_id, status, order_date, product_name, quantity, design_file_url, total_amount, amount, price, created_at, created_by, last_updated_at, last_updated_by`

func scanOrder(row pgx.Row) (models.Order, error) {
	var m models.Order
	err := row.Scan(
		&m.OrderID,
		&m.UserID,
		&m.Status,
		&m.OrderDate,
		&m.ProductName,
		&m.Quantity,
		&m.DesignFileURL,
		&m.TotalAmount,
		&m.Amount,
		&m.Price,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveOrder inserts a new order.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	m := mapping.ToModelOrder(order)

	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.OrderID,
		m.UserID,
		m.Status,
		m.OrderDate,
		m.ProductName,
		m.Quantity,
		m.DesignFileURL,
		m.TotalAmount,
		m.Amount,
		m.Price,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save order %s: %w", m.OrderID, err)
	}
	return nil
}

// FindOrderByID retrieves an order by its unique identifier.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1;`

	m, err := scanOrder(r.Pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order by ID %s: %w", orderID, err)
	}

	order := mapping.ToDomainOrder(m)
	return &order, nil
}

// ListOrdersByUser retrieves a page of the user's orders, newest first, using
// a keyset cursor over (order_date, created_at).
func (r *PgxOrderRepository) ListOrdersByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Order, *string, error) {
	args := []interface{}{userID}
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1`

	if nextToken != nil && *nextToken != "" {
		orderDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewBadRequestError("invalid pagination token")
		}
		query += ` AND (order_date, created_at) < ($2, $3)`
		args = append(args, orderDate, createdAt)
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(` ORDER BY order_date DESC, created_at DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query orders for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelOrders := make([]models.Order, 0, limit)
	for rows.Next() {
		m, err := scanOrder(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		modelOrders = append(modelOrders, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating order rows: %w", err)
	}

	var newNextToken *string
	if len(modelOrders) > limit {
		modelOrders = modelOrders[:limit]
		last := modelOrders[len(modelOrders)-1]
		token := pagination.EncodeToken(last.OrderDate, last.CreatedAt)
		newNextToken = &token
	}

	return mapping.ToDomainOrderSlice(modelOrders), newNextToken, nil
}

// revenueWindow converts the inclusive date-only range into a half-open
// timestamp window. order_date is a timestamptz; comparing it with <= against
// midnight of the final day would drop every order placed later that day.
func revenueWindow(from, to time.Time) (time.Time, time.Time) {
	return from, to.AddDate(0, 0, 1)
}

// SumOrdersRevenueInRange totals order revenue for the inclusive date range
// across all users. Amount resolution happens here rather than in SQL: a
// COALESCE over the three columns would pick up zero and negative values,
// and the rule is first POSITIVE value wins.
func (r *PgxOrderRepository) SumOrdersRevenueInRange(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT total_amount, amount, price
		FROM orders
		WHERE order_date >= $1 AND order_date < $2
		  AND status != $3;
	`

	lower, upper := revenueWindow(from, to)
	rows, err := r.Pool.Query(ctx, query, lower, upper, string(domain.OrderCancelled))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to query order revenue: %w", err)
	}
	defer rows.Close()

	candidates := make([]map[string]decimal.Decimal, 0)
	for rows.Next() {
		var totalAmount, amount, price decimal.NullDecimal
		if err := rows.Scan(&totalAmount, &amount, &price); err != nil {
			return decimal.Zero, fmt.Errorf("failed to scan order revenue row: %w", err)
		}

		row := make(map[string]decimal.Decimal, len(revenueCandidateColumns))
		if totalAmount.Valid {
			row["total_amount"] = totalAmount.Decimal
		}
		if amount.Valid {
			row["amount"] = amount.Decimal
		}
		if price.Valid {
			row["price"] = price.Decimal
		}
		candidates = append(candidates, row)
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, fmt.Errorf("error iterating order revenue rows: %w", err)
	}

	return accounting.SumAmount(candidates, revenueCandidateColumns), nil
}
