package sales

import (
	"context"
	"fmt"
	"sort"

	"agent360/internal/core/apperror"
	"agent360/internal/core/period"
	"agent360/internal/domain/analytics"
)

const performersLimit = 3

// Service orchestrates the order-based analytics queries.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// FamilySales returns per-family rows for the account over the range.
func (s *Service) FamilySales(ctx context.Context, accountID, from, to string) ([]FamilyRow, error) {
	cur, prior, err := resolveRanges(accountID, from, to)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FamilySales(ctx, accountID, cur, prior)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("family sales: %w", err))
	}

	for i := range rows {
		rows[i].DeviationPercent = analytics.DeviationPercent(rows[i].ActualSales, rows[i].RFC)
	}
	return rows, nil
}

// ProductSales returns per-product rows within one family.
func (s *Service) ProductSales(ctx context.Context, accountID, family, from, to string) ([]ProductRow, error) {
	cur, prior, err := resolveRanges(accountID, from, to)
	if err != nil {
		return nil, err
	}
	if family == "" {
		return nil, apperror.NewUnprocessable("family is required").
			WithField("family", "This field is required.")
	}

	rows, err := s.repo.ProductSales(ctx, accountID, family, cur, prior)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("product sales: %w", err))
	}

	for i := range rows {
		rows[i].DeviationPercent = analytics.DeviationPercent(rows[i].ActualSales, rows[i].RFC)
	}
	return rows, nil
}

// OrderContributions returns the per-order breakdown for one product.
func (s *Service) OrderContributions(ctx context.Context, accountID, productID, from, to string) ([]OrderContribution, error) {
	cur, _, err := resolveRanges(accountID, from, to)
	if err != nil {
		return nil, err
	}
	if productID == "" {
		return nil, apperror.NewUnprocessable("productId is required").
			WithField("productId", "This field is required.")
	}

	rows, err := s.repo.OrderContributions(ctx, accountID, productID, cur)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("order contributions: %w", err))
	}
	return rows, nil
}

// OrderDetails returns the product lines of one order.
func (s *Service) OrderDetails(ctx context.Context, accountID, orderID, from, to string) ([]OrderLineDetail, error) {
	cur, _, err := resolveRanges(accountID, from, to)
	if err != nil {
		return nil, err
	}
	if orderID == "" {
		return nil, apperror.NewUnprocessable("orderId is required").
			WithField("orderId", "This field is required.")
	}

	rows, err := s.repo.OrderDetails(ctx, accountID, orderID, cur)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("order details: %w", err))
	}
	return rows, nil
}

// ProductPerformance ranks products by forecast deviation. The account
// filter is optional.
func (s *Service) ProductPerformance(ctx context.Context, accountID, from, to string) (*Performance, error) {
	cur, err := parseRange(from, to)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ProductPerformance(ctx, accountID, cur)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("product performance: %w", err))
	}

	for i := range rows {
		rows[i].DeviationPercent = analytics.DeviationPercent(rows[i].ActualRevenue, rows[i].ForecastRevenue)
	}

	return &Performance{
		TopPerformers:    rankPerformers(rows, true),
		BottomPerformers: rankPerformers(rows, false),
	}, nil
}

// rankPerformers returns up to three rows by deviation, best first when
// desc, worst first otherwise. Ties break on product ID ascending.
func rankPerformers(rows []PerformanceRow, desc bool) []PerformanceRow {
	ranked := make([]PerformanceRow, len(rows))
	copy(ranked, rows)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].Deviation, ranked[j].Deviation
		if !a.Equal(b) {
			if desc {
				return a.GreaterThan(b)
			}
			return a.LessThan(b)
		}
		return ranked[i].ProductID < ranked[j].ProductID
	})

	if len(ranked) > performersLimit {
		ranked = ranked[:performersLimit]
	}
	return ranked
}

// resolveRanges validates the common query parameters and resolves the
// current and prior-year ranges.
func resolveRanges(accountID, from, to string) (period.Range, period.Range, error) {
	if accountID == "" {
		return period.Range{}, period.Range{}, apperror.NewUnprocessable("accountId is required").
			WithField("accountId", "This field is required.")
	}
	cur, err := parseRange(from, to)
	if err != nil {
		return period.Range{}, period.Range{}, err
	}
	return cur, cur.LastYear(), nil
}

func parseRange(from, to string) (period.Range, error) {
	start, err := period.ParseMonth(from)
	if err != nil {
		return period.Range{}, apperror.NewUnprocessable(err.Error()).
			WithField("from", "Expected a month in YYYY-MM format.")
	}
	end, err := period.ParseMonth(to)
	if err != nil {
		return period.Range{}, apperror.NewUnprocessable(err.Error()).
			WithField("to", "Expected a month in YYYY-MM format.")
	}
	r, err := period.NewRange(start, end)
	if err != nil {
		return period.Range{}, apperror.NewUnprocessable(err.Error()).
			WithField("from", "Start month must not be after end month.")
	}
	return r, nil
}
