package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bizfolio/portal_backend/internal/core/domain"
	portsrepo "github.com/bizfolio/portal_backend/internal/core/ports/repositories"
	"github.com/bizfolio/portal_backend/internal/models"
	"github.com/bizfolio/portal_backend/internal/utils/mapping"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for the four ledger tables.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// SaveExpense inserts a new expense entry.
func (r *PgxLedgerRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)

	query := `
		INSERT INTO expenses (expense_id, user_id, entry_date, description, category, amount, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.UserID,
		m.Date,
		m.Description,
		m.Category,
		m.Amount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense %s: %w", m.ExpenseID, err)
	}
	return nil
}

// ListExpenses retrieves expenses in the inclusive date range, optionally
// scoped to a user, newest first.
func (r *PgxLedgerRepository) ListExpenses(ctx context.Context, from, to time.Time, userID string) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, user_id, entry_date, description, category, amount, created_at, created_by, last_updated_at, last_updated_by
		FROM expenses
		WHERE entry_date >= $1 AND entry_date <= $2
		  AND ($3 = '' OR user_id = $3)
		ORDER BY entry_date DESC, created_at DESC;
	`

	rows, err := r.Pool.Query(ctx, query, from, to, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	for rows.Next() {
		var m models.Expense
		if err := rows.Scan(
			&m.ExpenseID,
			&m.UserID,
			&m.Date,
			&m.Description,
			&m.Category,
			&m.Amount,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}

	return mapping.ToDomainExpenseSlice(expenses), nil
}

// SaveIncomeEntry inserts a new income entry.
func (r *PgxLedgerRepository) SaveIncomeEntry(ctx context.Context, entry domain.IncomeEntry) error {
	m := mapping.ToModelIncomeEntry(entry)

	query := `
		INSERT INTO income_entries (income_id, user_id, entry_date, description, source, amount, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.IncomeID,
		m.UserID,
		m.Date,
		m.Description,
		m.Source,
		m.Amount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save income entry %s: %w", m.IncomeID, err)
	}
	return nil
}

// ListIncomeEntries retrieves income entries in the inclusive date range,
// optionally scoped to a user, newest first.
func (r *PgxLedgerRepository) ListIncomeEntries(ctx context.Context, from, to time.Time, userID string) ([]domain.IncomeEntry, error) {
	query := `
		SELECT income_id, user_id, entry_date, description, source, amount, created_at, created_by, last_updated_at, last_updated_by
		FROM income_entries
		WHERE entry_date >= $1 AND entry_date <= $2
		  AND ($3 = '' OR user_id = $3)
		ORDER BY entry_date DESC, created_at DESC;
	`

	rows, err := r.Pool.Query(ctx, query, from, to, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query income entries: %w", err)
	}
	defer rows.Close()

	entries := make([]models.IncomeEntry, 0)
	for rows.Next() {
		var m models.IncomeEntry
		if err := rows.Scan(
			&m.IncomeID,
			&m.UserID,
			&m.Date,
			&m.Description,
			&m.Source,
			&m.Amount,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan income entry row: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating income entry rows: %w", err)
	}

	return mapping.ToDomainIncomeEntrySlice(entries), nil
}

// SaveTaxItem inserts a new tax item.
func (r *PgxLedgerRepository) SaveTaxItem(ctx context.Context, item domain.TaxItem) error {
	m := mapping.ToModelTaxItem(item)

	query := `
		INSERT INTO tax_items (tax_item_id, user_id, entry_date, description, tax_type, amount, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.TaxItemID,
		m.UserID,
		m.Date,
		m.Description,
		m.TaxType,
		m.Amount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save tax item %s: %w", m.TaxItemID, err)
	}
	return nil
}

// ListTaxItems retrieves tax items in the inclusive date range, optionally
// scoped to a user, newest first.
func (r *PgxLedgerRepository) ListTaxItems(ctx context.Context, from, to time.Time, userID string) ([]domain.TaxItem, error) {
	query := `
		SELECT tax_item_id, user_id, entry_date, description, tax_type, amount, created_at, created_by, last_updated_at, last_updated_by
		FROM tax_items
		WHERE entry_date >= $1 AND entry_date <= $2
		  AND ($3 = '' OR user_id = $3)
		ORDER BY entry_date DESC, created_at DESC;
	`

	rows, err := r.Pool.Query(ctx, query, from, to, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tax items: %w", err)
	}
	defer rows.Close()

	items := make([]models.TaxItem, 0)
	for rows.Next() {
		var m models.TaxItem
		if err := rows.Scan(
			&m.TaxItemID,
			&m.UserID,
			&m.Date,
			&m.Description,
			&m.TaxType,
			&m.Amount,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tax item row: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tax item rows: %w", err)
	}

	return mapping.ToDomainTaxItemSlice(items), nil
}

// SaveMileageLog inserts a new mileage log.
func (r *PgxLedgerRepository) SaveMileageLog(ctx context.Context, log domain.MileageLog) error {
	m := mapping.ToModelMileageLog(log)

	query := `
		INSERT INTO mileage_logs (mileage_id, user_id, entry_date, description, miles, rate, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.MileageID,
		m.UserID,
		m.Date,
		m.Description,
		m.Miles,
		m.Rate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save mileage log %s: %w", m.MileageID, err)
	}
	return nil
}

// ListMileageLogs retrieves mileage logs in the inclusive date range,
// optionally scoped to a user, newest first.
func (r *PgxLedgerRepository) ListMileageLogs(ctx context.Context, from, to time.Time, userID string) ([]domain.MileageLog, error) {
	query := `
		SELECT mileage_id, user_id, entry_date, description, miles, rate, created_at, created_by, last_updated_at, last_updated_by
		FROM mileage_logs
		WHERE entry_date >= $1 AND entry_date <= $2
		  AND ($3 = '' OR user_id = $3)
		ORDER BY entry_date DESC, created_at DESC;
	`

	rows, err := r.Pool.Query(ctx, query, from, to, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query mileage logs: %w", err)
	}
	defer rows.Close()

	logs := make([]models.MileageLog, 0)
	for rows.Next() {
		var m models.MileageLog
		if err := rows.Scan(
			&m.MileageID,
			&m.UserID,
			&m.Date,
			&m.Description,
			&m.Miles,
			&m.Rate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan mileage log row: %w", err)
		}
		logs = append(logs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mileage log rows: %w", err)
	}

	return mapping.ToDomainMileageLogSlice(logs), nil
}
