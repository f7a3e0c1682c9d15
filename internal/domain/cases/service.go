package cases

import (
	"context"
	"fmt"
	"time"

	"agent360/internal/core/apperror"
)

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
	StatusAll    = "all"

	DefaultOrdering = "-opened_at"

	defaultPageSize = 20
	maxPageSize     = 100
)

// orderColumns maps API ordering fields to case table columns.
var orderColumns = map[string]string{
	"opened_at":     "sf_created_date",
	"last_modified": "last_modified_date",
}

// OrderColumn resolves an ordering field (without direction prefix) to its
// column, reporting whether the field is allowed.
func OrderColumn(field string) (string, bool) {
	col, ok := orderColumns[field]
	return col, ok
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

// Summary counts an account's open and closed cases, optionally limited
// by opening date.
func (s *Service) Summary(ctx context.Context, accountID, openedFrom, openedTo string) (*Summary, error) {
	if accountID == "" {
		return nil, apperror.NewValidation("account_id is required").
			WithField("account_id", "This field is required.")
	}

	f := SummaryFilter{AccountID: accountID}
	var err error
	if f.OpenedFrom, err = parseDate(openedFrom, "opened_from"); err != nil {
		return nil, err
	}
	if f.OpenedTo, err = parseDate(openedTo, "opened_to"); err != nil {
		return nil, err
	}

	summary, err := s.repo.Summary(ctx, f)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("case summary: %w", err))
	}
	return summary, nil
}

// List returns a page of cases plus the total match count.
func (s *Service) List(ctx context.Context, f ListFilter) ([]Case, int, error) {
	if f.AccountID == "" {
		return nil, 0, apperror.NewValidation("account_id is required").
			WithField("account_id", "This field is required.")
	}

	switch f.Status {
	case "":
		f.Status = StatusAll
	case StatusOpen, StatusClosed, StatusAll:
	default:
		msg := fmt.Sprintf("invalid status %q", f.Status)
		return nil, 0, apperror.NewValidation(msg).WithField("status", msg)
	}

	if f.Ordering == "" {
		f.Ordering = DefaultOrdering
	}
	field := f.Ordering
	if field[0] == '-' {
		field = field[1:]
	}
	if _, ok := orderColumns[field]; !ok {
		msg := fmt.Sprintf("invalid ordering field %q", field)
		return nil, 0, apperror.NewValidation(msg).WithField("ordering", msg)
	}

	f = f.Normalize()

	items, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, apperror.NewInternal(fmt.Errorf("case list: %w", err))
	}
	return items, total, nil
}

// Get returns one case by ID.
func (s *Service) Get(ctx context.Context, id string) (*Case, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, err
		}
		return nil, apperror.NewInternal(fmt.Errorf("case %s: %w", id, err))
	}
	return c, nil
}

// Comments returns a case's comments, newest first. Unknown case IDs
// yield a not found error.
func (s *Service) Comments(ctx context.Context, caseID string) ([]Comment, error) {
	if _, err := s.Get(ctx, caseID); err != nil {
		return nil, err
	}
	comments, err := s.repo.Comments(ctx, caseID)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("case comments: %w", err))
	}
	return comments, nil
}

// Timeline returns a case's field change history, newest first.
func (s *Service) Timeline(ctx context.Context, caseID string) ([]TimelineEvent, error) {
	if _, err := s.Get(ctx, caseID); err != nil {
		return nil, err
	}
	events, err := s.repo.Timeline(ctx, caseID)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("case timeline: %w", err))
	}
	return events, nil
}

func parseDate(value, field string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, apperror.NewValidation(fmt.Sprintf("invalid date %q", value)).
			WithField(field, "Expected a date in YYYY-MM-DD format.")
	}
	return &t, nil
}
