package analytics

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agent360/internal/core/apperror"
	"agent360/internal/core/period"
)

// stubRepo implements Repository with canned rows per source.
type stubRepo struct {
	familyActual   []SourceRow
	familyRFC      []SourceRow
	familyLastYear []SourceRow

	productActual   []SourceRow
	productRFC      []SourceRow
	productLastYear []SourceRow

	invoiceActual   []SourceRow
	invoiceRFC      decimal.Decimal
	invoiceLastYear []SourceRow

	lastYearRange period.Range
}

func (s *stubRepo) FamilyActualSales(_ context.Context, _ period.Range) ([]SourceRow, error) {
	return s.familyActual, nil
}

func (s *stubRepo) FamilyRFC(_ context.Context, _ period.Range) ([]SourceRow, error) {
	return s.familyRFC, nil
}

func (s *stubRepo) FamilyLastYearSales(_ context.Context, r period.Range) ([]SourceRow, error) {
	s.lastYearRange = r
	return s.familyLastYear, nil
}

func (s *stubRepo) ProductActualSales(_ context.Context, _ string, _ period.Range) ([]SourceRow, error) {
	return s.productActual, nil
}

func (s *stubRepo) ProductRFC(_ context.Context, _ string, _ period.Range) ([]SourceRow, error) {
	return s.productRFC, nil
}

func (s *stubRepo) ProductLastYearSales(_ context.Context, _ string, _ period.Range) ([]SourceRow, error) {
	return s.productLastYear, nil
}

func (s *stubRepo) InvoiceActualSales(_ context.Context, _ string, _ period.Range) ([]SourceRow, error) {
	return s.invoiceActual, nil
}

func (s *stubRepo) InvoiceRFC(_ context.Context, _ string, _ period.Range) (decimal.Decimal, error) {
	return s.invoiceRFC, nil
}

func (s *stubRepo) InvoiceLastYearSales(_ context.Context, _ string, _ period.Range) ([]SourceRow, error) {
	return s.invoiceLastYear, nil
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestLevelDrillable(t *testing.T) {
	assert.True(t, LevelFamily.Drillable())
	assert.True(t, LevelProduct.Drillable())
	assert.False(t, LevelInvoice.Drillable())
}

func TestDeviationPercent(t *testing.T) {
	assert.Equal(t, 10.0, DeviationPercent(dec(110), dec(100)))
	assert.Equal(t, -10.0, DeviationPercent(dec(90), dec(100)))
	assert.Equal(t, 0.0, DeviationPercent(dec(100), dec(0)))
	assert.Equal(t, 33.33, DeviationPercent(dec(400), dec(300)))
}

func TestMergeSources_UnionOfKeys(t *testing.T) {
	merged := mergeSources(
		[]SourceRow{{Key: "Herbicides", Amount: dec(100)}},
		[]SourceRow{{Key: "Herbicides", Amount: dec(80)}},
		[]SourceRow{{Key: "Herbicides", Amount: dec(70)}},
	)

	require.Len(t, merged, 1)
	assert.Equal(t, "Herbicides", merged[0].Key)
	assert.True(t, merged[0].Actual.Equal(dec(100)))
	assert.True(t, merged[0].RFC.Equal(dec(80)))
	assert.True(t, merged[0].LastYear.Equal(dec(70)))
}

func TestMergeSources_ZeroDefaults(t *testing.T) {
	merged := mergeSources(
		[]SourceRow{{Key: "A", Amount: dec(100)}},
		[]SourceRow{{Key: "B", Amount: dec(50)}},
		[]SourceRow{{Key: "C", Amount: dec(25)}},
	)

	require.Len(t, merged, 3)
	byKey := map[string]*mergedEntry{}
	for _, m := range merged {
		byKey[m.Key] = m
	}

	assert.True(t, byKey["A"].RFC.IsZero())
	assert.True(t, byKey["A"].LastYear.IsZero())
	assert.True(t, byKey["B"].Actual.IsZero())
	assert.True(t, byKey["B"].LastYear.IsZero())
	assert.True(t, byKey["C"].Actual.IsZero())
	assert.True(t, byKey["C"].RFC.IsZero())
}

func TestRankRows(t *testing.T) {
	rows := func() []Row {
		return []Row{
			{ID: "A", ActualSales: dec(100)},
			{ID: "B", ActualSales: dec(300)},
			{ID: "C", ActualSales: dec(200)},
		}
	}

	ids := func(rs []Row) []string {
		out := make([]string, len(rs))
		for i, r := range rs {
			out[i] = r.ID
		}
		return out
	}

	assert.Equal(t, []string{"B", "C", "A"}, ids(rankRows(rows(), "-actual_sales", 0)))
	assert.Equal(t, []string{"A", "C", "B"}, ids(rankRows(rows(), "actual_sales", 0)))
	assert.Equal(t, []string{"B", "C"}, ids(rankRows(rows(), "-actual_sales", 2)))
}

func TestRankRows_TieBreakOnID(t *testing.T) {
	rows := []Row{
		{ID: "Z", ActualSales: dec(100)},
		{ID: "A", ActualSales: dec(100)},
	}
	ranked := rankRows(rows, "-actual_sales", 0)
	assert.Equal(t, "A", ranked[0].ID)
	assert.Equal(t, "Z", ranked[1].ID)
}

func TestGet_InvalidLevel(t *testing.T) {
	svc := NewService(&stubRepo{})
	_, err := svc.Get(context.Background(), Query{
		Level:      "region",
		StartMonth: "2025-01",
		EndMonth:   "2025-03",
	})

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestGet_MissingParentID(t *testing.T) {
	svc := NewService(&stubRepo{})

	for _, level := range []Level{LevelProduct, LevelInvoice} {
		_, err := svc.Get(context.Background(), Query{
			Level:      level,
			StartMonth: "2025-01",
			EndMonth:   "2025-03",
		})

		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		require.Len(t, appErr.Fields, 1)
		assert.Equal(t, "parent_id", appErr.Fields[0].Field)
	}
}

func TestGet_ReversedRange(t *testing.T) {
	svc := NewService(&stubRepo{})
	_, err := svc.Get(context.Background(), Query{
		Level:      LevelFamily,
		StartMonth: "2025-10",
		EndMonth:   "2025-03",
	})

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestGet_InvalidOrderingField(t *testing.T) {
	svc := NewService(&stubRepo{})
	_, err := svc.Get(context.Background(), Query{
		Level:      LevelFamily,
		StartMonth: "2025-01",
		EndMonth:   "2025-03",
		Ordering:   "-revenue",
	})

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestGet_FamilySingleSource(t *testing.T) {
	repo := &stubRepo{
		familyActual: []SourceRow{{Key: "Herbicides", Amount: dec(1000)}},
	}
	svc := NewService(repo)

	report, err := svc.Get(context.Background(), Query{
		Level:      LevelFamily,
		StartMonth: "2025-03",
		EndMonth:   "2025-10",
	})
	require.NoError(t, err)

	require.Len(t, report.Results, 1)
	row := report.Results[0]
	assert.Equal(t, "Herbicides", row.ID)
	assert.Equal(t, "Herbicides", row.Name)
	assert.True(t, row.ActualSales.Equal(dec(1000)))
	assert.True(t, row.RFC.IsZero())
	assert.True(t, row.LastYearSales.IsZero())
	assert.Equal(t, 0.0, row.DeviationPercent)
	assert.True(t, row.IsDrillable)

	assert.True(t, report.TotalActualSales.Equal(dec(1000)))
	assert.True(t, report.TotalRFC.IsZero())
	require.Len(t, report.ChartData, 1)
	assert.Equal(t, "Herbicides", report.ChartData[0].Label)
	assert.True(t, report.ChartData[0].Value.Equal(dec(1000)))

	// The last-year query must receive the range shifted back one year.
	assert.Equal(t, 2024, repo.lastYearRange.From.Year())
	assert.Equal(t, 2024, repo.lastYearRange.To.Year())
}

func TestGet_FamilyDropsEmptyKeys(t *testing.T) {
	repo := &stubRepo{
		familyActual: []SourceRow{
			{Key: "", Amount: dec(500)},
			{Key: "Fungicides", Amount: dec(200)},
		},
	}
	svc := NewService(repo)

	report, err := svc.Get(context.Background(), Query{
		Level:      LevelFamily,
		StartMonth: "2025-01",
		EndMonth:   "2025-02",
	})
	require.NoError(t, err)

	require.Len(t, report.Results, 1)
	assert.Equal(t, "Fungicides", report.Results[0].ID)
	assert.True(t, report.TotalActualSales.Equal(dec(200)))
}

func TestGet_InvoiceRFCAttribution(t *testing.T) {
	// Single invoice: the product-level RFC total is attributed to it.
	repo := &stubRepo{
		invoiceActual: []SourceRow{
			{Key: "INV001", Name: "2025-0001", Status: "Closed", Amount: dec(500)},
		},
		invoiceRFC: dec(400),
	}
	svc := NewService(repo)

	report, err := svc.Get(context.Background(), Query{
		Level:      LevelInvoice,
		StartMonth: "2025-01",
		EndMonth:   "2025-03",
		ParentID:   "PROD001",
	})
	require.NoError(t, err)

	require.Len(t, report.Results, 1)
	row := report.Results[0]
	assert.Equal(t, "2025-0001", row.Name)
	require.NotNil(t, row.Status)
	assert.Equal(t, "Closed", *row.Status)
	assert.True(t, row.RFC.Equal(dec(400)))
	assert.Equal(t, 25.0, row.DeviationPercent)
	assert.False(t, row.IsDrillable)

	// Multiple invoices: RFC cannot be attributed, every row reports zero.
	repo.invoiceActual = append(repo.invoiceActual,
		SourceRow{Key: "INV002", Name: "2025-0002", Status: "Closed", Amount: dec(300)})

	report, err = svc.Get(context.Background(), Query{
		Level:      LevelInvoice,
		StartMonth: "2025-01",
		EndMonth:   "2025-03",
		ParentID:   "PROD001",
	})
	require.NoError(t, err)

	require.Len(t, report.Results, 2)
	for _, row := range report.Results {
		assert.True(t, row.RFC.IsZero())
		assert.Equal(t, 0.0, row.DeviationPercent)
	}
}

func TestGet_ProductUsesNameFromActuals(t *testing.T) {
	repo := &stubRepo{
		productActual: []SourceRow{
			{Key: "PROD001", Name: "Roundup Pro", Amount: dec(100)},
		},
		productRFC: []SourceRow{
			{Key: "PROD002", Amount: dec(50)},
		},
	}
	svc := NewService(repo)

	report, err := svc.Get(context.Background(), Query{
		Level:      LevelProduct,
		StartMonth: "2025-01",
		EndMonth:   "2025-03",
		ParentID:   "Herbicides",
	})
	require.NoError(t, err)

	require.Len(t, report.Results, 2)
	assert.Equal(t, "Roundup Pro", report.Results[0].Name)
	// RFC-only row falls back to its key as the display name.
	assert.Equal(t, "PROD002", report.Results[1].Name)
	assert.True(t, report.Results[1].ActualSales.IsZero())
}
