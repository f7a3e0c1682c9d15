package users

import (
	"context"
	"fmt"

	"agent360/internal/core/apperror"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

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

// Repository loads user data.
type Repository interface {
	List(ctx context.Context, f ListFilter) ([]User, int, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns a page of active users ordered by name plus the total
// match count.
func (s *Service) List(ctx context.Context, f ListFilter) ([]User, int, error) {
	f = f.Normalize()

	items, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, apperror.NewInternal(fmt.Errorf("user list: %w", err))
	}
	return items, total, nil
}
