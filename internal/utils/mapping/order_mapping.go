package mapping

import (
	"github.com/bizfolio/portal_backend/internal/core/domain"
	"github.com/bizfolio/portal_backend/internal/models"
	"github.com/shopspring/decimal"
)

func nullableAmountPtr(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	v := n.Decimal
	return &v
}

func nullableFromPtr(p *decimal.Decimal) decimal.NullDecimal {
	if p == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *p, Valid: true}
}

// ToModelOrder converts a domain Order to its persistence model.
func ToModelOrder(d domain.Order) models.Order {
	m := models.Order{
		OrderID:     d.OrderID,
		UserID:      d.UserID,
		Status:      string(d.Status),
		OrderDate:   d.OrderDate,
		ProductName: d.ProductName,
		Quantity:    d.Quantity,
		TotalAmount: nullableFromPtr(d.TotalAmount),
		Amount:      nullableFromPtr(d.Amount),
		Price:       nullableFromPtr(d.Price),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.DesignFileURL != "" {
		m.DesignFileURL.String = d.DesignFileURL
		m.DesignFileURL.Valid = true
	}
	return m
}

// ToDomainOrder converts a model Order to its domain form.
func ToDomainOrder(m models.Order) domain.Order {
	d := domain.Order{
		OrderID:     m.OrderID,
		UserID:      m.UserID,
		Status:      domain.OrderStatus(m.Status),
		OrderDate:   m.OrderDate,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		TotalAmount: nullableAmountPtr(m.TotalAmount),
		Amount:      nullableAmountPtr(m.Amount),
		Price:       nullableAmountPtr(m.Price),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.DesignFileURL.Valid {
		d.DesignFileURL = m.DesignFileURL.String
	}
	return d
}

// ToDomainOrderSlice converts a slice of model Orders to domain form.
func ToDomainOrderSlice(ms []models.Order) []domain.Order {
	ds := make([]domain.Order, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOrder(m)
	}
	return ds
}
