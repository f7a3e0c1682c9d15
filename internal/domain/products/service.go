package products

import (
	"context"
	"fmt"

	"agent360/internal/core/apperror"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Repository loads product catalog data. GetByID returns a not found
// error for unknown IDs.
type Repository interface {
	List(ctx context.Context, f ListFilter) ([]Product, int, error)
	Families(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id string) (*Product, error)
}

// Normalize clamps paging values to their valid bounds. Handlers apply
// it before querying so response metadata reflects the effective page.
func (f ListFilter) Normalize() ListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = defaultPageSize
	}
	if f.PageSize > maxPageSize {
		f.PageSize = maxPageSize
	}
	return f
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns a page of products plus the total match count.
func (s *Service) List(ctx context.Context, f ListFilter) ([]Product, int, error) {
	f = f.Normalize()

	items, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, apperror.NewInternal(fmt.Errorf("product list: %w", err))
	}
	return items, total, nil
}

// Families returns the distinct non-empty product families.
func (s *Service) Families(ctx context.Context) ([]string, error) {
	families, err := s.repo.Families(ctx)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("product families: %w", err))
	}
	return families, nil
}

// Get returns one product by ID.
func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, err
		}
		return nil, apperror.NewInternal(fmt.Errorf("product %s: %w", id, err))
	}
	return p, nil
}
