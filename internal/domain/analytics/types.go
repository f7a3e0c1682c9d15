// Package analytics provides hierarchical sales analytics aggregation
// (family -> product -> invoice) merging actual sales, approved forecast
// revenue (RFC) and prior-year sales into one report.
package analytics

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Level is the aggregation dimension.
type Level string

const (
	LevelFamily  Level = "family"
	LevelProduct Level = "product"
	LevelInvoice Level = "invoice"
)

// ParseLevel validates an aggregation level string.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelFamily, LevelProduct, LevelInvoice:
		return Level(s), nil
	}
	return "", fmt.Errorf("invalid level %q: must be one of family, product, invoice", s)
}

// Drillable reports whether results at this level can be expanded further.
// Invoice is the finest granularity.
func (l Level) Drillable() bool {
	return l != LevelInvoice
}

// Query describes one analytics request.
type Query struct {
	Level      Level
	StartMonth string
	EndMonth   string

	// ParentID narrows drill-down levels: the family name for product
	// level, the product ID for invoice level.
	ParentID string

	// TopN truncates results after ordering; zero means no limit.
	TopN int

	// Ordering is a result field name, optionally prefixed with '-' for
	// descending. Defaults to "-actual_sales".
	Ordering string
}

// SourceRow is one aggregate row from a single source query, before merging.
type SourceRow struct {
	// Key is the dimension value: family name, product ID or invoice ID.
	Key string `db:"key"`

	// Name is the display name where it differs from the key (product
	// name, invoice number). Empty at family level.
	Name string `db:"name"`

	// Status carries the invoice status at invoice level.
	Status string `db:"status"`

	Amount decimal.Decimal `db:"amount"`
}

// Row is one merged result record with all three sources populated.
type Row struct {
	ID               string
	Name             string
	Status           *string
	ActualSales      decimal.Decimal
	RFC              decimal.Decimal
	LastYearSales    decimal.Decimal
	DeviationPercent float64
	IsDrillable      bool
}

// ChartPoint is one label/value pair for chart rendering.
type ChartPoint struct {
	Label string
	Value decimal.Decimal
}

// Report is the assembled analytics payload.
type Report struct {
	Level      Level
	StartMonth string
	EndMonth   string

	// Totals are computed over the displayed (post-limit) rows.
	TotalActualSales   decimal.Decimal
	TotalRFC           decimal.Decimal
	TotalLastYearSales decimal.Decimal

	ChartData []ChartPoint
	Results   []Row
}
