package sales

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agent360/internal/core/apperror"
	"agent360/internal/core/period"
)

type stubRepo struct {
	families      []FamilyRow
	products      []ProductRow
	contributions []OrderContribution
	details       []OrderLineDetail
	performance   []PerformanceRow

	priorRange period.Range
}

func (s *stubRepo) FamilySales(_ context.Context, _ string, _, prior period.Range) ([]FamilyRow, error) {
	s.priorRange = prior
	return s.families, nil
}

func (s *stubRepo) ProductSales(_ context.Context, _, _ string, _, _ period.Range) ([]ProductRow, error) {
	return s.products, nil
}

func (s *stubRepo) OrderContributions(_ context.Context, _, _ string, _ period.Range) ([]OrderContribution, error) {
	return s.contributions, nil
}

func (s *stubRepo) OrderDetails(_ context.Context, _, _ string, _ period.Range) ([]OrderLineDetail, error) {
	return s.details, nil
}

func (s *stubRepo) ProductPerformance(_ context.Context, _ string, _ period.Range) ([]PerformanceRow, error) {
	return s.performance, nil
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func requireUnprocessable(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 422, appErr.HTTPStatus)
	require.NotEmpty(t, appErr.Fields)
	assert.Equal(t, field, appErr.Fields[0].Field)
}

func TestFamilySales_FillsDeviation(t *testing.T) {
	repo := &stubRepo{
		families: []FamilyRow{
			{Family: "Herbicides", ActualSales: dec(110), RFC: dec(100)},
			{Family: "Fungicides", ActualSales: dec(90), RFC: dec(100)},
			{Family: "Seeds", ActualSales: dec(50)},
		},
	}
	svc := NewService(repo)

	rows, err := svc.FamilySales(context.Background(), "ACC001", "2025-03", "2025-10")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 10.0, rows[0].DeviationPercent)
	assert.Equal(t, -10.0, rows[1].DeviationPercent)
	assert.Equal(t, 0.0, rows[2].DeviationPercent)

	// The prior range handed to the repository is the year-shifted window.
	assert.Equal(t, 2024, repo.priorRange.From.Year())
	assert.Equal(t, 2024, repo.priorRange.To.Year())
}

func TestFamilySales_Validation(t *testing.T) {
	svc := NewService(&stubRepo{})

	_, err := svc.FamilySales(context.Background(), "", "2025-01", "2025-03")
	requireUnprocessable(t, err, "accountId")

	_, err = svc.FamilySales(context.Background(), "ACC001", "2025/01", "2025-03")
	requireUnprocessable(t, err, "from")

	_, err = svc.FamilySales(context.Background(), "ACC001", "2025-01", "2025-13")
	requireUnprocessable(t, err, "to")

	_, err = svc.FamilySales(context.Background(), "ACC001", "2025-10", "2025-03")
	requireUnprocessable(t, err, "from")
}

func TestProductSales_RequiresFamily(t *testing.T) {
	svc := NewService(&stubRepo{})
	_, err := svc.ProductSales(context.Background(), "ACC001", "", "2025-01", "2025-03")
	requireUnprocessable(t, err, "family")
}

func TestOrderContributions_RequiresProductID(t *testing.T) {
	svc := NewService(&stubRepo{})
	_, err := svc.OrderContributions(context.Background(), "ACC001", "", "2025-01", "2025-03")
	requireUnprocessable(t, err, "productId")
}

func TestOrderDetails_RequiresOrderID(t *testing.T) {
	svc := NewService(&stubRepo{})
	_, err := svc.OrderDetails(context.Background(), "ACC001", "", "2025-01", "2025-03")
	requireUnprocessable(t, err, "orderId")
}

func TestProductPerformance_TopAndBottom(t *testing.T) {
	repo := &stubRepo{
		performance: []PerformanceRow{
			{ProductID: "P1", ProductName: "One", ActualRevenue: dec(150), ForecastRevenue: dec(100), Deviation: dec(50)},
			{ProductID: "P2", ProductName: "Two", ActualRevenue: dec(80), ForecastRevenue: dec(100), Deviation: dec(-20)},
			{ProductID: "P3", ProductName: "Three", ActualRevenue: dec(120), ForecastRevenue: dec(100), Deviation: dec(20)},
			{ProductID: "P4", ProductName: "Four", ActualRevenue: dec(60), ForecastRevenue: dec(100), Deviation: dec(-40)},
			{ProductID: "P5", ProductName: "Five", ActualRevenue: dec(100), ForecastRevenue: dec(100), Deviation: dec(0)},
		},
	}
	svc := NewService(repo)

	perf, err := svc.ProductPerformance(context.Background(), "ACC001", "2025-01", "2025-06")
	require.NoError(t, err)

	require.Len(t, perf.TopPerformers, 3)
	assert.Equal(t, "P1", perf.TopPerformers[0].ProductID)
	assert.Equal(t, "P3", perf.TopPerformers[1].ProductID)
	assert.Equal(t, "P5", perf.TopPerformers[2].ProductID)

	require.Len(t, perf.BottomPerformers, 3)
	assert.Equal(t, "P4", perf.BottomPerformers[0].ProductID)
	assert.Equal(t, "P2", perf.BottomPerformers[1].ProductID)
	assert.Equal(t, "P5", perf.BottomPerformers[2].ProductID)

	assert.Equal(t, 50.0, perf.TopPerformers[0].DeviationPercent)
	assert.Equal(t, -40.0, perf.BottomPerformers[0].DeviationPercent)
}

func TestProductPerformance_FewerThanThree(t *testing.T) {
	repo := &stubRepo{
		performance: []PerformanceRow{
			{ProductID: "P1", ActualRevenue: dec(150), ForecastRevenue: dec(100), Deviation: dec(50)},
		},
	}
	svc := NewService(repo)

	perf, err := svc.ProductPerformance(context.Background(), "", "2025-01", "2025-06")
	require.NoError(t, err)
	assert.Len(t, perf.TopPerformers, 1)
	assert.Len(t, perf.BottomPerformers, 1)
}
