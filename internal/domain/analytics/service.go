package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"agent360/internal/core/apperror"
	"agent360/internal/core/period"
)

// DefaultOrdering sorts by actual sales, highest first.
const DefaultOrdering = "-actual_sales"

// orderFields whitelists sortable result fields.
var orderFields = map[string]func(*Row) decimal.Decimal{
	"actual_sales":      func(r *Row) decimal.Decimal { return r.ActualSales },
	"rfc":               func(r *Row) decimal.Decimal { return r.RFC },
	"last_year_sales":   func(r *Row) decimal.Decimal { return r.LastYearSales },
	"deviation_percent": func(r *Row) decimal.Decimal { return decimal.NewFromFloat(r.DeviationPercent) },
}

// Service aggregates sales analytics across three sources.
type Service struct {
	repo Repository
}

// NewService creates a new analytics service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get runs the full pipeline: validate, resolve date ranges, query the
// three sources, merge by key, compute deviations, rank and format.
func (s *Service) Get(ctx context.Context, q Query) (*Report, error) {
	if q.Ordering == "" {
		q.Ordering = DefaultOrdering
	}

	cur, err := s.validate(&q)
	if err != nil {
		return nil, err
	}
	prior := cur.LastYear()

	var rows []Row
	switch q.Level {
	case LevelFamily:
		rows, err = s.familyRows(ctx, cur, prior)
	case LevelProduct:
		rows, err = s.productRows(ctx, q.ParentID, cur, prior)
	case LevelInvoice:
		rows, err = s.invoiceRows(ctx, q.ParentID, cur, prior)
	}
	if err != nil {
		return nil, apperror.NewAnalytics(err)
	}

	rows = rankRows(rows, q.Ordering, q.TopN)

	return formatReport(q, rows), nil
}

// validate checks the query and resolves the current date range.
func (s *Service) validate(q *Query) (period.Range, error) {
	level, err := ParseLevel(string(q.Level))
	if err != nil {
		return period.Range{}, apperror.NewValidation(err.Error()).WithField("level", err.Error())
	}
	q.Level = level

	if (level == LevelProduct || level == LevelInvoice) && q.ParentID == "" {
		msg := fmt.Sprintf("parent_id is required for level %q", level)
		return period.Range{}, apperror.NewValidation(msg).WithField("parent_id", msg)
	}

	start, err := period.ParseMonth(q.StartMonth)
	if err != nil {
		return period.Range{}, apperror.NewValidation("Invalid month format. Use YYYY-MM").
			WithField("start_month", err.Error())
	}
	end, err := period.ParseMonth(q.EndMonth)
	if err != nil {
		return period.Range{}, apperror.NewValidation("Invalid month format. Use YYYY-MM").
			WithField("end_month", err.Error())
	}

	cur, err := period.NewRange(start, end)
	if err != nil {
		return period.Range{}, apperror.NewValidation(err.Error()).WithField("end_month", err.Error())
	}

	if q.TopN < 0 {
		return period.Range{}, apperror.NewValidation("top_n must be a positive integer").
			WithField("top_n", "must be a positive integer")
	}

	field := strings.TrimPrefix(q.Ordering, "-")
	if _, ok := orderFields[field]; !ok {
		msg := fmt.Sprintf("invalid ordering field %q", field)
		return period.Range{}, apperror.NewValidation(msg).WithField("ordering", msg)
	}

	return cur, nil
}

func (s *Service) familyRows(ctx context.Context, cur, prior period.Range) ([]Row, error) {
	actual, err := s.repo.FamilyActualSales(ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("family actual sales: %w", err)
	}
	rfc, err := s.repo.FamilyRFC(ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("family rfc: %w", err)
	}
	lastYear, err := s.repo.FamilyLastYearSales(ctx, prior)
	if err != nil {
		return nil, fmt.Errorf("family last year sales: %w", err)
	}

	merged := mergeSources(actual, rfc, lastYear)

	rows := make([]Row, 0, len(merged))
	for _, m := range merged {
		if m.Key == "" {
			continue
		}
		rows = append(rows, Row{
			ID:               m.Key,
			Name:             m.Key,
			ActualSales:      m.Actual,
			RFC:              m.RFC,
			LastYearSales:    m.LastYear,
			DeviationPercent: DeviationPercent(m.Actual, m.RFC),
			IsDrillable:      LevelFamily.Drillable(),
		})
	}
	return rows, nil
}

func (s *Service) productRows(ctx context.Context, family string, cur, prior period.Range) ([]Row, error) {
	actual, err := s.repo.ProductActualSales(ctx, family, cur)
	if err != nil {
		return nil, fmt.Errorf("product actual sales: %w", err)
	}
	rfc, err := s.repo.ProductRFC(ctx, family, cur)
	if err != nil {
		return nil, fmt.Errorf("product rfc: %w", err)
	}
	lastYear, err := s.repo.ProductLastYearSales(ctx, family, prior)
	if err != nil {
		return nil, fmt.Errorf("product last year sales: %w", err)
	}

	merged := mergeSources(actual, rfc, lastYear)

	rows := make([]Row, 0, len(merged))
	for _, m := range merged {
		if m.Key == "" {
			continue
		}
		name := m.Name
		if name == "" {
			name = m.Key
		}
		rows = append(rows, Row{
			ID:               m.Key,
			Name:             name,
			ActualSales:      m.Actual,
			RFC:              m.RFC,
			LastYearSales:    m.LastYear,
			DeviationPercent: DeviationPercent(m.Actual, m.RFC),
			IsDrillable:      LevelProduct.Drillable(),
		})
	}
	return rows, nil
}

func (s *Service) invoiceRows(ctx context.Context, productID string, cur, prior period.Range) ([]Row, error) {
	actual, err := s.repo.InvoiceActualSales(ctx, productID, cur)
	if err != nil {
		return nil, fmt.Errorf("invoice actual sales: %w", err)
	}
	totalRFC, err := s.repo.InvoiceRFC(ctx, productID, cur)
	if err != nil {
		return nil, fmt.Errorf("invoice rfc: %w", err)
	}
	lastYear, err := s.repo.InvoiceLastYearSales(ctx, productID, prior)
	if err != nil {
		return nil, fmt.Errorf("invoice last year sales: %w", err)
	}

	merged := mergeSources(actual, nil, lastYear)

	// Forecasts carry no invoice dimension. The product-level RFC total is
	// attributed only when it unambiguously belongs to a single invoice;
	// otherwise every invoice row reports zero RFC.
	single := len(merged) == 1

	rows := make([]Row, 0, len(merged))
	for _, m := range merged {
		if m.Key == "" {
			continue
		}
		name := m.Name
		if name == "" {
			name = m.Key
		}
		row := Row{
			ID:            m.Key,
			Name:          name,
			ActualSales:   m.Actual,
			LastYearSales: m.LastYear,
			RFC:           decimal.Zero,
			IsDrillable:   LevelInvoice.Drillable(),
		}
		if m.Status != "" {
			status := m.Status
			row.Status = &status
		}
		if single {
			row.RFC = totalRFC
			row.DeviationPercent = DeviationPercent(m.Actual, totalRFC)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// mergedEntry accumulates the three source values for one key.
type mergedEntry struct {
	Key      string
	Name     string
	Status   string
	Actual   decimal.Decimal
	RFC      decimal.Decimal
	LastYear decimal.Decimal
}

// mergeSources merges the three source row sets by key. Actual rows seed
// the map; RFC and last-year rows update existing entries or create new
// ones with the other fields zeroed. The returned slice preserves first
// appearance order.
func mergeSources(actual, rfc, lastYear []SourceRow) []*mergedEntry {
	index := make(map[string]*mergedEntry)
	var ordered []*mergedEntry

	upsert := func(r SourceRow) *mergedEntry {
		if e, ok := index[r.Key]; ok {
			return e
		}
		e := &mergedEntry{Key: r.Key, Name: r.Name, Status: r.Status}
		index[r.Key] = e
		ordered = append(ordered, e)
		return e
	}

	for _, r := range actual {
		upsert(r).Actual = r.Amount
	}
	for _, r := range rfc {
		upsert(r).RFC = r.Amount
	}
	for _, r := range lastYear {
		upsert(r).LastYear = r.Amount
	}

	return ordered
}

// DeviationPercent computes ((actual - rfc) / rfc) * 100 rounded to two
// decimals when rfc is positive, else 0. Shared by the invoice-based and
// order-based analytics variants.
func DeviationPercent(actual, rfc decimal.Decimal) float64 {
	if !rfc.IsPositive() {
		return 0
	}
	v, _ := actual.Sub(rfc).Div(rfc).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	return v
}

// rankRows sorts rows by the ordering field and truncates to topN when
// positive. Ties break on row ID ascending to keep ordering reproducible.
func rankRows(rows []Row, ordering string, topN int) []Row {
	desc := strings.HasPrefix(ordering, "-")
	field := strings.TrimPrefix(ordering, "-")
	value := orderFields[field]

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := value(&rows[i]), value(&rows[j])
		if !a.Equal(b) {
			if desc {
				return a.GreaterThan(b)
			}
			return a.LessThan(b)
		}
		return rows[i].ID < rows[j].ID
	})

	if topN > 0 && topN < len(rows) {
		rows = rows[:topN]
	}
	return rows
}

// formatReport sums totals over the displayed rows and builds chart data
// in result order.
func formatReport(q Query, rows []Row) *Report {
	report := &Report{
		Level:              q.Level,
		StartMonth:         q.StartMonth,
		EndMonth:           q.EndMonth,
		TotalActualSales:   decimal.Zero,
		TotalRFC:           decimal.Zero,
		TotalLastYearSales: decimal.Zero,
		ChartData:          make([]ChartPoint, 0, len(rows)),
		Results:            rows,
	}

	for _, r := range rows {
		report.TotalActualSales = report.TotalActualSales.Add(r.ActualSales)
		report.TotalRFC = report.TotalRFC.Add(r.RFC)
		report.TotalLastYearSales = report.TotalLastYearSales.Add(r.LastYearSales)
		report.ChartData = append(report.ChartData, ChartPoint{Label: r.Name, Value: r.ActualSales})
	}

	return report
}
