// Package sales_repo provides the PostgreSQL implementation of the
// order-based sales aggregations.
package sales_repo

import (
	"context"
	"fmt"

	"agent360/internal/core/period"
	"agent360/internal/domain/sales"
	"agent360/internal/infrastructure/storage/postgres"
)

// SalesRepo implements sales.Repository with combined CTE queries so the
// database does the grouping and joining in one round trip.
type SalesRepo struct {
	db *postgres.DB
}

func NewSalesRepo(db *postgres.DB) *SalesRepo {
	return &SalesRepo{db: db}
}

// familySalesQuery joins current orders, prior-year orders, and approved
// forecasts per family. FULL OUTER JOINs keep families present in only
// one of the three sources, COALESCE zero-fills the rest.
const familySalesQuery = `
	WITH actuals AS (
		SELECT
			COALESCE(p.family, '') AS family,
			SUM(oli.ordered_amount) AS actual_sales,
			SUM(oli.open_amount) AS open_sales
		FROM order_line_items oli
		JOIN orders o ON oli.order_id = o.id
		JOIN products p ON oli.product_id = p.id
		WHERE o.account_id = $1
		  AND o.is_active = TRUE
		  AND oli.is_active = TRUE
		  AND o.effective_date >= $2 AND o.effective_date <= $3
		GROUP BY p.family
	),
	last_year AS (
		SELECT
			COALESCE(p.family, '') AS family,
			SUM(oli.ordered_amount) AS last_year_sales
		FROM order_line_items oli
		JOIN orders o ON oli.order_id = o.id
		JOIN products p ON oli.product_id = p.id
		WHERE o.account_id = $1
		  AND o.is_active = TRUE
		  AND oli.is_active = TRUE
		  AND o.effective_date >= $4 AND o.effective_date <= $5
		GROUP BY p.family
	),
	rfc AS (
		SELECT
			COALESCE(p.family, '') AS family,
			SUM(f.revenue) AS rfc
		FROM forecasts f
		JOIN products p ON f.product_id = p.id
		WHERE f.account_id = $1
		  AND f.status = 'Approved'
		  AND f.forecast_date >= $2 AND f.forecast_date <= $3
		GROUP BY p.family
	)
	SELECT
		COALESCE(a.family, ly.family, r.family) AS family,
		COALESCE(a.actual_sales, 0) AS actual_sales,
		COALESCE(a.open_sales, 0) AS open_sales,
		COALESCE(ly.last_year_sales, 0) AS last_year_sales,
		COALESCE(r.rfc, 0) AS rfc
	FROM actuals a
	FULL OUTER JOIN last_year ly ON a.family = ly.family
	FULL OUTER JOIN rfc r ON COALESCE(a.family, ly.family) = r.family
	WHERE COALESCE(a.family, ly.family, r.family) <> ''
	ORDER BY actual_sales DESC, family
`

func (r *SalesRepo) FamilySales(ctx context.Context, accountID string, cur, prior period.Range) ([]sales.FamilyRow, error) {
	var rows []sales.FamilyRow
	err := r.db.Select(ctx, &rows, "sales.family", familySalesQuery,
		accountID, cur.From, cur.To, prior.From, prior.To)
	if err != nil {
		return nil, fmt.Errorf("family sales: %w", err)
	}
	return rows, nil
}

const productSalesQuery = `
	WITH actuals AS (
		SELECT
			oli.product_id,
			SUM(oli.ordered_amount) AS actual_sales,
			SUM(oli.open_amount) AS open_sales
		FROM order_line_items oli
		JOIN orders o ON oli.order_id = o.id
		JOIN products p ON oli.product_id = p.id
		WHERE o.account_id = $1
		  AND COALESCE(p.family, '') = $2
		  AND o.is_active = TRUE
		  AND oli.is_active = TRUE
		  AND o.effective_date >= $3 AND o.effective_date <= $4
		GROUP BY oli.product_id
	),
	last_year AS (
		SELECT
			oli.product_id,
			SUM(oli.ordered_amount) AS last_year_sales
		FROM order_line_items oli
		JOIN orders o ON oli.order_id = o.id
		JOIN products p ON oli.product_id = p.id
		WHERE o.account_id = $1
		  AND COALESCE(p.family, '') = $2
		  AND o.is_active = TRUE
		  AND oli.is_active = TRUE
		  AND o.effective_date >= $5 AND o.effective_date <= $6
		GROUP BY oli.product_id
	),
	rfc AS (
		SELECT
			f.product_id,
			SUM(f.revenue) AS rfc
		FROM forecasts f
		JOIN products p ON f.product_id = p.id
		WHERE f.account_id = $1
		  AND COALESCE(p.family, '') = $2
		  AND f.status = 'Approved'
		  AND f.forecast_date >= $3 AND f.forecast_date <= $4
		GROUP BY f.product_id
	)
	SELECT
		p.id AS product_id,
		p.name AS product_name,
		COALESCE(a.actual_sales, 0) AS actual_sales,
		COALESCE(a.open_sales, 0) AS open_sales,
		COALESCE(ly.last_year_sales, 0) AS last_year_sales,
		COALESCE(r.rfc, 0) AS rfc
	FROM actuals a
	FULL OUTER JOIN last_year ly ON a.product_id = ly.product_id
	FULL OUTER JOIN rfc r ON COALESCE(a.product_id, ly.product_id) = r.product_id
	JOIN products p ON COALESCE(a.product_id, ly.product_id, r.product_id) = p.id
	ORDER BY actual_sales DESC, product_name
`

func (r *SalesRepo) ProductSales(ctx context.Context, accountID, family string, cur, prior period.Range) ([]sales.ProductRow, error) {
	var rows []sales.ProductRow
	err := r.db.Select(ctx, &rows, "sales.product", productSalesQuery,
		accountID, family, cur.From, cur.To, prior.From, prior.To)
	if err != nil {
		return nil, fmt.Errorf("product sales: %w", err)
	}
	return rows, nil
}

const orderContributionsQuery = `
	SELECT
		o.id AS order_id,
		o.order_number,
		o.status AS order_status,
		COALESCE(SUM(oli.ordered_quantity), 0) AS ordered_quantity,
		COALESCE(SUM(oli.ordered_amount), 0) AS ordered_amount,
		COALESCE(SUM(oli.open_quantity), 0) AS open_quantity,
		COALESCE(SUM(oli.open_amount), 0) AS open_amount
	FROM order_line_items oli
	JOIN orders o ON oli.order_id = o.id
	WHERE o.account_id = $1
	  AND oli.product_id = $2
	  AND o.is_active = TRUE
	  AND oli.is_active = TRUE
	  AND o.effective_date >= $3 AND o.effective_date <= $4
	GROUP BY o.id, o.order_number, o.status, o.effective_date
	ORDER BY o.effective_date DESC, o.order_number
`

func (r *SalesRepo) OrderContributions(ctx context.Context, accountID, productID string, rng period.Range) ([]sales.OrderContribution, error) {
	var rows []sales.OrderContribution
	err := r.db.Select(ctx, &rows, "sales.order_contributions", orderContributionsQuery,
		accountID, productID, rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("order contributions: %w", err)
	}
	return rows, nil
}

const orderDetailsQuery = `
	SELECT
		p.id AS product_id,
		p.name AS product_name,
		oli.ordered_quantity,
		oli.ordered_amount,
		oli.open_quantity,
		oli.open_amount
	FROM order_line_items oli
	JOIN orders o ON oli.order_id = o.id
	JOIN products p ON oli.product_id = p.id
	WHERE o.account_id = $1
	  AND o.id = $2
	  AND o.is_active = TRUE
	  AND oli.is_active = TRUE
	  AND o.effective_date >= $3 AND o.effective_date <= $4
	ORDER BY p.name
`

func (r *SalesRepo) OrderDetails(ctx context.Context, accountID, orderID string, rng period.Range) ([]sales.OrderLineDetail, error) {
	var rows []sales.OrderLineDetail
	err := r.db.Select(ctx, &rows, "sales.order_details", orderDetailsQuery,
		accountID, orderID, rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("order details: %w", err)
	}
	return rows, nil
}

// ProductPerformance compares invoiced revenue against approved forecasts
// per product. Credit notes are excluded from actuals. The account filter
// is appended only when set.
func (r *SalesRepo) ProductPerformance(ctx context.Context, accountID string, rng period.Range) ([]sales.PerformanceRow, error) {
	args := []any{rng.From, rng.To}

	invoiceFilter := ""
	forecastFilter := ""
	if accountID != "" {
		args = append(args, accountID)
		invoiceFilter = "AND i.account_id = $3"
		forecastFilter = "AND f.account_id = $3"
	}

	query := fmt.Sprintf(`
		WITH actuals AS (
			SELECT
				li.product_id,
				SUM(li.net_price) AS actual_revenue
			FROM invoice_line_items li
			JOIN invoices i ON li.invoice_id = i.id
			WHERE i.status = 'Closed'
			  AND i.is_valid = TRUE
			  AND li.is_valid = TRUE
			  AND i.invoice_type <> 'Credit Note'
			  AND i.invoice_date >= $1 AND i.invoice_date <= $2
			  %s
			GROUP BY li.product_id
		),
		rfc AS (
			SELECT
				f.product_id,
				SUM(f.revenue) AS forecast_revenue
			FROM forecasts f
			WHERE f.status = 'Approved'
			  AND f.forecast_date >= $1 AND f.forecast_date <= $2
			  %s
			GROUP BY f.product_id
		)
		SELECT
			p.id AS product_id,
			p.name AS product_name,
			COALESCE(a.actual_revenue, 0) AS actual_revenue,
			COALESCE(r.forecast_revenue, 0) AS forecast_revenue,
			COALESCE(a.actual_revenue, 0) - COALESCE(r.forecast_revenue, 0) AS deviation
		FROM actuals a
		FULL OUTER JOIN rfc r ON a.product_id = r.product_id
		JOIN products p ON COALESCE(a.product_id, r.product_id) = p.id
		ORDER BY deviation DESC, product_name
	`, invoiceFilter, forecastFilter)

	var rows []sales.PerformanceRow
	if err := r.db.Select(ctx, &rows, "sales.product_performance", query, args...); err != nil {
		return nil, fmt.Errorf("product performance: %w", err)
	}
	return rows, nil
}

// Ensure interface compliance
var _ sales.Repository = (*SalesRepo)(nil)
