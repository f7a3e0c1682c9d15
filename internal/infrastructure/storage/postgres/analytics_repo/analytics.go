// Package analytics_repo provides the PostgreSQL implementation of the
// invoice-based analytics selectors.
package analytics_repo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"agent360/internal/core/period"
	"agent360/internal/domain/analytics"
	"agent360/internal/infrastructure/storage/postgres"
)

// AnalyticsRepo implements analytics.Repository over the Salesforce
// mirror tables.
type AnalyticsRepo struct {
	db *postgres.DB
}

func NewAnalyticsRepo(db *postgres.DB) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// Actual sales count only closed invoices where both the invoice and the
// line survived the last sync validation.
const familyActualSalesQuery = `
	SELECT
		COALESCE(p.family, '') AS key,
		COALESCE(p.family, '') AS name,
		'' AS status,
		COALESCE(SUM(li.net_price), 0) AS amount
	FROM invoice_line_items li
	JOIN invoices i ON li.invoice_id = i.id
	JOIN products p ON li.product_id = p.id
	WHERE i.status = 'Closed'
	  AND i.is_valid = TRUE
	  AND li.is_valid = TRUE
	  AND i.invoice_date >= $1 AND i.invoice_date <= $2
	GROUP BY p.family
`

func (r *AnalyticsRepo) FamilyActualSales(ctx context.Context, rng period.Range) ([]analytics.SourceRow, error) {
	return r.selectRows(ctx, "analytics.family_actual_sales", familyActualSalesQuery, rng.From, rng.To)
}

func (r *AnalyticsRepo) FamilyLastYearSales(ctx context.Context, rng period.Range) ([]analytics.SourceRow, error) {
	return r.selectRows(ctx, "analytics.family_last_year_sales", familyActualSalesQuery, rng.From, rng.To)
}

const familyRFCQuery = `
	SELECT
		COALESCE(p.family, '') AS key,
		COALESCE(p.family, '') AS name,
		'' AS status,
		COALESCE(SUM(f.revenue), 0) AS amount
	FROM forecasts f
	JOIN products p ON f.product_id = p.id
	WHERE f.status = 'Approved'
	  AND f.forecast_date >= $1 AND f.forecast_date <= $2
	GROUP BY p.family
`

func (r *AnalyticsRepo) FamilyRFC(ctx context.Context, rng period.Range) ([]analytics.SourceRow, error) {
	return r.selectRows(ctx, "analytics.family_rfc", familyRFCQuery, rng.From, rng.To)
}

const productActualSalesQuery = `
	SELECT
		p.id AS key,
		p.name AS name,
		'' AS status,
		COALESCE(SUM(li.net_price), 0) AS amount
	FROM invoice_line_items li
	JOIN invoices i ON li.invoice_id = i.id
	JOIN products p ON li.product_id = p.id
	WHERE i.status = 'Closed'
	  AND i.is_valid = TRUE
	  AND li.is_valid = TRUE
	  AND COALESCE(p.family, '') = $1
	  AND i.invoice_date >= $2 AND i.invoice_date <= $3
	GROUP BY p.id, p.name
`

func (r *AnalyticsRepo) ProductActualSales(ctx context.Context, family string, rng period.Range) ([]analytics.SourceRow, error) {
	return r.selectRows(ctx, "analytics.product_actual_sales", productActualSalesQuery, family, rng.From, rng.To)
}

func (r *AnalyticsRepo) ProductLastYearSales(ctx context.Context, family string, rng period.Range) ([]analytics.SourceRow, error) {
	return r.selectRows(ctx, "analytics.product_last_year_sales", productActualSalesQuery, family, rng.From, rng.To)
}

const productRFCQuery = `
	SELECT
		p.id AS key,
		p.name AS name,
		'' AS status,
		COALESCE(SUM(f.revenue), 0) AS amount
	FROM forecasts f
	JOIN products p ON f.product_id = p.id
	WHERE f.status = 'Approved'
	  AND COALESCE(p.family, '') = $1
	  AND f.forecast_date >= $2 AND f.forecast_date <= $3
	GROUP BY p.id, p.name
`

func (r *AnalyticsRepo) ProductRFC(ctx context.Context, family string, rng period.Range) ([]analytics.SourceRow, error) {
	return r.selectRows(ctx, "analytics.product_rfc", productRFCQuery, family, rng.From, rng.To)
}

const invoiceActualSalesQuery = `
	SELECT
		i.id AS key,
		i.invoice_number AS name,
		i.status AS status,
		COALESCE(SUM(li.net_price), 0) AS amount
	FROM invoice_line_items li
	JOIN invoices i ON li.invoice_id = i.id
	WHERE i.status = 'Closed'
	  AND i.is_valid = TRUE
	  AND li.is_valid = TRUE
	  AND li.product_id = $1
	  AND i.invoice_date >= $2 AND i.invoice_date <= $3
	GROUP BY i.id, i.invoice_number, i.status
`

func (r *AnalyticsRepo) InvoiceActualSales(ctx context.Context, productID string, rng period.Range) ([]analytics.SourceRow, error) {
	return r.selectRows(ctx, "analytics.invoice_actual_sales", invoiceActualSalesQuery, productID, rng.From, rng.To)
}

func (r *AnalyticsRepo) InvoiceLastYearSales(ctx context.Context, productID string, rng period.Range) ([]analytics.SourceRow, error) {
	return r.selectRows(ctx, "analytics.invoice_last_year_sales", invoiceActualSalesQuery, productID, rng.From, rng.To)
}

// Forecasts carry no invoice dimension, so invoice-level RFC is a single
// product total.
const invoiceRFCQuery = `
	SELECT COALESCE(SUM(f.revenue), 0) AS amount
	FROM forecasts f
	WHERE f.status = 'Approved'
	  AND f.product_id = $1
	  AND f.forecast_date >= $2 AND f.forecast_date <= $3
`

func (r *AnalyticsRepo) InvoiceRFC(ctx context.Context, productID string, rng period.Range) (decimal.Decimal, error) {
	var row struct {
		Amount decimal.Decimal `db:"amount"`
	}
	if err := r.db.Get(ctx, &row, "analytics.invoice_rfc", invoiceRFCQuery, productID, rng.From, rng.To); err != nil {
		return decimal.Zero, fmt.Errorf("invoice rfc: %w", err)
	}
	return row.Amount, nil
}

func (r *AnalyticsRepo) selectRows(ctx context.Context, name, query string, args ...any) ([]analytics.SourceRow, error) {
	var rows []analytics.SourceRow
	if err := r.db.Select(ctx, &rows, name, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return rows, nil
}

// Ensure interface compliance
var _ analytics.Repository = (*AnalyticsRepo)(nil)
