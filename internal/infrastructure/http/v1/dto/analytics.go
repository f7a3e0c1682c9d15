package dto

import "agent360/internal/domain/analytics"

// AnalyticsRow is one aggregated result row. Amounts are rendered as
// JSON numbers.
type AnalyticsRow struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Status           *string `json:"status,omitempty"`
	ActualSales      float64 `json:"actual_sales"`
	RFC              float64 `json:"rfc"`
	LastYearSales    float64 `json:"last_year_sales"`
	DeviationPercent float64 `json:"deviation_percent"`
	IsDrillable      bool    `json:"is_drillable"`
}

// AnalyticsChartPoint is one chart entry in result order.
type AnalyticsChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// AnalyticsReport echoes the query and carries totals, chart data, and rows.
type AnalyticsReport struct {
	Level              string                `json:"level"`
	StartMonth         string                `json:"start_month"`
	EndMonth           string                `json:"end_month"`
	TotalActualSales   float64               `json:"total_actual_sales"`
	TotalRFC           float64               `json:"total_rfc"`
	TotalLastYearSales float64               `json:"total_last_year_sales"`
	ChartData          []AnalyticsChartPoint `json:"chart_data"`
	Results            []AnalyticsRow        `json:"results"`
}

// FromAnalyticsReport converts the domain report to its response shape.
func FromAnalyticsReport(r *analytics.Report) AnalyticsReport {
	out := AnalyticsReport{
		Level:              string(r.Level),
		StartMonth:         r.StartMonth,
		EndMonth:           r.EndMonth,
		TotalActualSales:   r.TotalActualSales.InexactFloat64(),
		TotalRFC:           r.TotalRFC.InexactFloat64(),
		TotalLastYearSales: r.TotalLastYearSales.InexactFloat64(),
		ChartData:          make([]AnalyticsChartPoint, 0, len(r.ChartData)),
		Results:            make([]AnalyticsRow, 0, len(r.Results)),
	}

	for _, p := range r.ChartData {
		out.ChartData = append(out.ChartData, AnalyticsChartPoint{
			Label: p.Label,
			Value: p.Value.InexactFloat64(),
		})
	}

	for _, row := range r.Results {
		out.Results = append(out.Results, AnalyticsRow{
			ID:               row.ID,
			Name:             row.Name,
			Status:           row.Status,
			ActualSales:      row.ActualSales.InexactFloat64(),
			RFC:              row.RFC.InexactFloat64(),
			LastYearSales:    row.LastYearSales.InexactFloat64(),
			DeviationPercent: row.DeviationPercent,
			IsDrillable:      row.IsDrillable,
		})
	}

	return out
}
