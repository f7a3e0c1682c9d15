package dto

import "agent360/internal/domain/products"

type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Family      *string `json:"family"`
	Brand       *string `json:"brand"`
	ProductCode *string `json:"product_code"`
	IsActive    bool    `json:"is_active"`
}

func FromProduct(p *products.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Family:      p.Family,
		Brand:       p.Brand,
		ProductCode: p.ProductCode,
		IsActive:    p.IsActive,
	}
}

func FromProducts(items []products.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(items))
	for i := range items {
		out = append(out, FromProduct(&items[i]))
	}
	return out
}
