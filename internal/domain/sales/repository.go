package sales

import (
	"context"

	"agent360/internal/core/period"
)

// Repository loads aggregated order and forecast data. Implementations run
// the combined actual/last-year/forecast queries in SQL; deviation is
// filled in by the service.
type Repository interface {
	// FamilySales returns per-family order totals for the current range
	// joined with forecasts and last-year totals over the prior range.
	FamilySales(ctx context.Context, accountID string, cur, prior period.Range) ([]FamilyRow, error)

	// ProductSales returns per-product totals within one family.
	ProductSales(ctx context.Context, accountID, family string, cur, prior period.Range) ([]ProductRow, error)

	// OrderContributions returns the orders carrying a product in the range.
	OrderContributions(ctx context.Context, accountID, productID string, r period.Range) ([]OrderContribution, error)

	// OrderDetails returns the product lines of a single order.
	OrderDetails(ctx context.Context, accountID, orderID string, r period.Range) ([]OrderLineDetail, error)

	// ProductPerformance returns invoiced revenue vs approved forecast per
	// product. accountID is optional; empty means all accounts.
	ProductPerformance(ctx context.Context, accountID string, r period.Range) ([]PerformanceRow, error)
}
