// Package product_repo provides the PostgreSQL implementation of product
// catalog lookups.
package product_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"agent360/internal/core/apperror"
	"agent360/internal/domain/products"
	"agent360/internal/infrastructure/storage/postgres"
)

const productTable = "products"

var productColumns = []string{
	"id",
	"name",
	"family",
	"brand",
	"product_code",
	"is_active",
}

// ProductRepo implements products.Repository.
type ProductRepo struct {
	db      *postgres.DB
	builder squirrel.StatementBuilderType
}

func NewProductRepo(db *postgres.DB) *ProductRepo {
	return &ProductRepo{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List returns a page of products and the total match count.
func (r *ProductRepo) List(ctx context.Context, f products.ListFilter) ([]products.Product, int, error) {
	base := r.builder.Select(productColumns...).From(productTable)
	countQ := r.builder.Select("COUNT(*) AS total").From(productTable)

	if f.Family != "" {
		cond := squirrel.Eq{"family": f.Family}
		base = base.Where(cond)
		countQ = countQ.Where(cond)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		cond := squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"product_code": pattern},
		}
		base = base.Where(cond)
		countQ = countQ.Where(cond)
	}
	if f.Active != nil {
		cond := squirrel.Eq{"is_active": *f.Active}
		base = base.Where(cond)
		countQ = countQ.Where(cond)
	}

	q := base.
		OrderBy("name ASC", "id ASC").
		Limit(uint64(f.PageSize)).
		Offset(uint64((f.Page - 1) * f.PageSize))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var items []products.Product
	if err := r.db.Select(ctx, &items, "products.list", sql, args...); err != nil {
		return nil, 0, fmt.Errorf("product list: %w", err)
	}

	sql, args, err = countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var row struct {
		Total int `db:"total"`
	}
	if err := r.db.Get(ctx, &row, "products.count", sql, args...); err != nil {
		return nil, 0, fmt.Errorf("product count: %w", err)
	}
	return items, row.Total, nil
}

const familiesQuery = `
	SELECT DISTINCT family
	FROM products
	WHERE family IS NOT NULL AND family <> ''
	ORDER BY family
`

// Families returns the distinct non-empty product families.
func (r *ProductRepo) Families(ctx context.Context) ([]string, error) {
	var families []string
	if err := r.db.Select(ctx, &families, "products.families", familiesQuery); err != nil {
		return nil, fmt.Errorf("product families: %w", err)
	}
	return families, nil
}

// GetByID retrieves one product.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*products.Product, error) {
	q := r.builder.Select(productColumns...).
		From(productTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var p products.Product
	if err := r.db.Get(ctx, &p, "products.get", sql, args...); err != nil {
		if postgres.NotFound(err) {
			return nil, apperror.NewNotFound("product", id)
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Ensure interface compliance
var _ products.Repository = (*ProductRepo)(nil)
