// Package products serves read-only product catalog lookups.
package products

// Product mirrors a Salesforce product record.
type Product struct {
	ID          string  `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Family      *string `db:"family" json:"family"`
	Brand       *string `db:"brand" json:"brand"`
	ProductCode *string `db:"product_code" json:"product_code"`
	IsActive    bool    `db:"is_active" json:"is_active"`
}

// ListFilter narrows a product list query. Active is a tri-state: nil
// means both active and inactive products.
type ListFilter struct {
	Family   string
	Search   string
	Active   *bool
	Page     int
	PageSize int
}
