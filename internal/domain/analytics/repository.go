package analytics

import (
	"context"

	"github.com/shopspring/decimal"

	"agent360/internal/core/period"
)

// Repository defines the source aggregate queries behind the analytics
// engine. Each method returns one row per dimension key; keys absent from
// a source are simply missing, not zero.
type Repository interface {
	// Family level: all closed, valid invoice lines grouped by product family.
	FamilyActualSales(ctx context.Context, r period.Range) ([]SourceRow, error)
	FamilyRFC(ctx context.Context, r period.Range) ([]SourceRow, error)
	FamilyLastYearSales(ctx context.Context, r period.Range) ([]SourceRow, error)

	// Product level: grouped by product within one family.
	ProductActualSales(ctx context.Context, family string, r period.Range) ([]SourceRow, error)
	ProductRFC(ctx context.Context, family string, r period.Range) ([]SourceRow, error)
	ProductLastYearSales(ctx context.Context, family string, r period.Range) ([]SourceRow, error)

	// Invoice level: grouped by invoice within one product. Forecasts have
	// no invoice granularity, so RFC is a single product-level total.
	InvoiceActualSales(ctx context.Context, productID string, r period.Range) ([]SourceRow, error)
	InvoiceRFC(ctx context.Context, productID string, r period.Range) (decimal.Decimal, error)
	InvoiceLastYearSales(ctx context.Context, productID string, r period.Range) ([]SourceRow, error)
}
