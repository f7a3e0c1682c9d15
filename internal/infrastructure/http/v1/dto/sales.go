package dto

import "agent360/internal/domain/sales"

// Sales endpoints keep the camelCase field names their consumers expect.

type FamilySalesRow struct {
	Family           string  `json:"family"`
	ActualSales      float64 `json:"actualSales"`
	OpenSales        float64 `json:"openSales"`
	LastYearSales    float64 `json:"lastYearSales"`
	RFC              float64 `json:"rfc"`
	DeviationPercent float64 `json:"deviationPercent"`
}

func FromFamilyRows(rows []sales.FamilyRow) []FamilySalesRow {
	out := make([]FamilySalesRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, FamilySalesRow{
			Family:           r.Family,
			ActualSales:      r.ActualSales.InexactFloat64(),
			OpenSales:        r.OpenSales.InexactFloat64(),
			LastYearSales:    r.LastYearSales.InexactFloat64(),
			RFC:              r.RFC.InexactFloat64(),
			DeviationPercent: r.DeviationPercent,
		})
	}
	return out
}

type ProductSalesRow struct {
	ProductID        string  `json:"productId"`
	ProductName      string  `json:"productName"`
	ActualSales      float64 `json:"actualSales"`
	OpenSales        float64 `json:"openSales"`
	LastYearSales    float64 `json:"lastYearSales"`
	RFC              float64 `json:"rfc"`
	DeviationPercent float64 `json:"deviationPercent"`
}

func FromProductRows(rows []sales.ProductRow) []ProductSalesRow {
	out := make([]ProductSalesRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, ProductSalesRow{
			ProductID:        r.ProductID,
			ProductName:      r.ProductName,
			ActualSales:      r.ActualSales.InexactFloat64(),
			OpenSales:        r.OpenSales.InexactFloat64(),
			LastYearSales:    r.LastYearSales.InexactFloat64(),
			RFC:              r.RFC.InexactFloat64(),
			DeviationPercent: r.DeviationPercent,
		})
	}
	return out
}

type OrderContributionRow struct {
	OrderID         string  `json:"orderId"`
	OrderNumber     string  `json:"orderNumber"`
	OrderStatus     string  `json:"orderStatus"`
	OrderedQuantity float64 `json:"orderedQuantity"`
	OrderedAmount   float64 `json:"orderedAmount"`
	OpenQuantity    float64 `json:"openQuantity"`
	OpenAmount      float64 `json:"openAmount"`
}

func FromOrderContributions(rows []sales.OrderContribution) []OrderContributionRow {
	out := make([]OrderContributionRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, OrderContributionRow{
			OrderID:         r.OrderID,
			OrderNumber:     r.OrderNumber,
			OrderStatus:     r.OrderStatus,
			OrderedQuantity: r.OrderedQuantity.InexactFloat64(),
			OrderedAmount:   r.OrderedAmount.InexactFloat64(),
			OpenQuantity:    r.OpenQuantity.InexactFloat64(),
			OpenAmount:      r.OpenAmount.InexactFloat64(),
		})
	}
	return out
}

type OrderLineDetailRow struct {
	ProductID       string  `json:"productId"`
	ProductName     string  `json:"productName"`
	OrderedQuantity float64 `json:"orderedQuantity"`
	OrderedAmount   float64 `json:"orderedAmount"`
	OpenQuantity    float64 `json:"openQuantity"`
	OpenAmount      float64 `json:"openAmount"`
}

func FromOrderLineDetails(rows []sales.OrderLineDetail) []OrderLineDetailRow {
	out := make([]OrderLineDetailRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, OrderLineDetailRow{
			ProductID:       r.ProductID,
			ProductName:     r.ProductName,
			OrderedQuantity: r.OrderedQuantity.InexactFloat64(),
			OrderedAmount:   r.OrderedAmount.InexactFloat64(),
			OpenQuantity:    r.OpenQuantity.InexactFloat64(),
			OpenAmount:      r.OpenAmount.InexactFloat64(),
		})
	}
	return out
}

type PerformanceRowDTO struct {
	ProductID        string  `json:"productId"`
	ProductName      string  `json:"productName"`
	ActualRevenue    float64 `json:"actualRevenue"`
	ForecastRevenue  float64 `json:"forecastRevenue"`
	Deviation        float64 `json:"deviation"`
	DeviationPercent float64 `json:"deviationPercent"`
}

type PerformanceResponse struct {
	TopPerformers    []PerformanceRowDTO `json:"topPerformers"`
	BottomPerformers []PerformanceRowDTO `json:"bottomPerformers"`
}

func FromPerformance(p *sales.Performance) PerformanceResponse {
	return PerformanceResponse{
		TopPerformers:    fromPerformanceRows(p.TopPerformers),
		BottomPerformers: fromPerformanceRows(p.BottomPerformers),
	}
}

func fromPerformanceRows(rows []sales.PerformanceRow) []PerformanceRowDTO {
	out := make([]PerformanceRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, PerformanceRowDTO{
			ProductID:        r.ProductID,
			ProductName:      r.ProductName,
			ActualRevenue:    r.ActualRevenue.InexactFloat64(),
			ForecastRevenue:  r.ForecastRevenue.InexactFloat64(),
			Deviation:        r.Deviation.InexactFloat64(),
			DeviationPercent: r.DeviationPercent,
		})
	}
	return out
}
