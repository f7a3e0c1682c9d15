// Package sales implements the order-based sales analytics: family and
// product aggregations over orders vs forecasts, per-order contribution
// drill-down, and product performer ranking.
package sales

import "github.com/shopspring/decimal"

// FamilyRow aggregates order sales for one product family.
type FamilyRow struct {
	Family           string          `db:"family" json:"family"`
	ActualSales      decimal.Decimal `db:"actual_sales" json:"actualSales"`
	OpenSales        decimal.Decimal `db:"open_sales" json:"openSales"`
	LastYearSales    decimal.Decimal `db:"last_year_sales" json:"lastYearSales"`
	RFC              decimal.Decimal `db:"rfc" json:"rfc"`
	DeviationPercent float64         `db:"-" json:"deviationPercent"`
}

// ProductRow aggregates order sales for one product within a family.
type ProductRow struct {
	ProductID        string          `db:"product_id" json:"productId"`
	ProductName      string          `db:"product_name" json:"productName"`
	ActualSales      decimal.Decimal `db:"actual_sales" json:"actualSales"`
	OpenSales        decimal.Decimal `db:"open_sales" json:"openSales"`
	LastYearSales    decimal.Decimal `db:"last_year_sales" json:"lastYearSales"`
	RFC              decimal.Decimal `db:"rfc" json:"rfc"`
	DeviationPercent float64         `db:"-" json:"deviationPercent"`
}

// OrderContribution is one order's share of a product's sales in the period.
type OrderContribution struct {
	OrderID         string          `db:"order_id" json:"orderId"`
	OrderNumber     string          `db:"order_number" json:"orderNumber"`
	OrderStatus     string          `db:"order_status" json:"orderStatus"`
	OrderedQuantity decimal.Decimal `db:"ordered_quantity" json:"orderedQuantity"`
	OrderedAmount   decimal.Decimal `db:"ordered_amount" json:"orderedAmount"`
	OpenQuantity    decimal.Decimal `db:"open_quantity" json:"openQuantity"`
	OpenAmount      decimal.Decimal `db:"open_amount" json:"openAmount"`
}

// OrderLineDetail is one product line within a single order.
type OrderLineDetail struct {
	ProductID       string          `db:"product_id" json:"productId"`
	ProductName     string          `db:"product_name" json:"productName"`
	OrderedQuantity decimal.Decimal `db:"ordered_quantity" json:"orderedQuantity"`
	OrderedAmount   decimal.Decimal `db:"ordered_amount" json:"orderedAmount"`
	OpenQuantity    decimal.Decimal `db:"open_quantity" json:"openQuantity"`
	OpenAmount      decimal.Decimal `db:"open_amount" json:"openAmount"`
}

// PerformanceRow compares one product's invoiced revenue against its
// approved forecast.
type PerformanceRow struct {
	ProductID        string          `db:"product_id" json:"productId"`
	ProductName      string          `db:"product_name" json:"productName"`
	ActualRevenue    decimal.Decimal `db:"actual_revenue" json:"actualRevenue"`
	ForecastRevenue  decimal.Decimal `db:"forecast_revenue" json:"forecastRevenue"`
	Deviation        decimal.Decimal `db:"deviation" json:"deviation"`
	DeviationPercent float64         `db:"-" json:"deviationPercent"`
}

// Performance holds the best and worst products by forecast deviation.
type Performance struct {
	TopPerformers    []PerformanceRow `json:"topPerformers"`
	BottomPerformers []PerformanceRow `json:"bottomPerformers"`
}
