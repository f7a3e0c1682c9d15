// Package case_repo provides the PostgreSQL implementation of complaint
// case lookups.
package case_repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"agent360/internal/core/apperror"
	"agent360/internal/domain/cases"
	"agent360/internal/infrastructure/storage/postgres"
)

const caseTable = "cases"

var caseColumns = []string{
	"c.id",
	"c.account_id",
	"c.case_number",
	"c.status",
	"c.subject",
	"c.description",
	"c.priority",
	"c.origin",
	"c.is_closed",
	"c.sf_created_date",
	"c.last_modified_date",
	"(SELECT COUNT(*) FROM case_comments cc WHERE cc.case_id = c.id) AS comments_count",
	"(SELECT COUNT(*) FROM case_history ch WHERE ch.case_id = c.id) AS timeline_count",
}

// CaseRepo implements cases.Repository.
type CaseRepo struct {
	db      *postgres.DB
	builder squirrel.StatementBuilderType
}

func NewCaseRepo(db *postgres.DB) *CaseRepo {
	return &CaseRepo{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Summary counts open and closed cases in one pass.
func (r *CaseRepo) Summary(ctx context.Context, f cases.SummaryFilter) (*cases.Summary, error) {
	q := r.builder.Select(
		"COUNT(*) FILTER (WHERE is_closed = FALSE) AS open_count",
		"COUNT(*) FILTER (WHERE is_closed = TRUE) AS closed_count",
		"COUNT(*) AS total_count",
	).
		From(caseTable).
		Where(squirrel.Eq{"account_id": f.AccountID})

	if f.OpenedFrom != nil {
		q = q.Where(squirrel.GtOrEq{"sf_created_date": *f.OpenedFrom})
	}
	if f.OpenedTo != nil {
		q = q.Where(squirrel.LtOrEq{"sf_created_date": *f.OpenedTo})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var s cases.Summary
	if err := r.db.Get(ctx, &s, "cases.summary", sql, args...); err != nil {
		return nil, fmt.Errorf("case summary: %w", err)
	}
	return &s, nil
}

// List returns a page of cases and the total match count.
func (r *CaseRepo) List(ctx context.Context, f cases.ListFilter) ([]cases.Case, int, error) {
	base := r.builder.Select(caseColumns...).
		From(caseTable + " c").
		Where(squirrel.Eq{"c.account_id": f.AccountID})

	switch f.Status {
	case cases.StatusOpen:
		base = base.Where(squirrel.Eq{"c.is_closed": false})
	case cases.StatusClosed:
		base = base.Where(squirrel.Eq{"c.is_closed": true})
	}

	field := strings.TrimPrefix(f.Ordering, "-")
	column, ok := cases.OrderColumn(field)
	if !ok {
		return nil, 0, fmt.Errorf("unknown ordering field %q", field)
	}
	direction := "ASC"
	if strings.HasPrefix(f.Ordering, "-") {
		direction = "DESC"
	}

	q := base.
		OrderBy(fmt.Sprintf("c.%s %s", column, direction), "c.id ASC").
		Limit(uint64(f.PageSize)).
		Offset(uint64((f.Page - 1) * f.PageSize))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var items []cases.Case
	if err := r.db.Select(ctx, &items, "cases.list", sql, args...); err != nil {
		return nil, 0, fmt.Errorf("case list: %w", err)
	}

	total, err := r.count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *CaseRepo) count(ctx context.Context, f cases.ListFilter) (int, error) {
	q := r.builder.Select("COUNT(*) AS total").
		From(caseTable).
		Where(squirrel.Eq{"account_id": f.AccountID})

	switch f.Status {
	case cases.StatusOpen:
		q = q.Where(squirrel.Eq{"is_closed": false})
	case cases.StatusClosed:
		q = q.Where(squirrel.Eq{"is_closed": true})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var row struct {
		Total int `db:"total"`
	}
	if err := r.db.Get(ctx, &row, "cases.count", sql, args...); err != nil {
		return 0, fmt.Errorf("case count: %w", err)
	}
	return row.Total, nil
}

// GetByID retrieves one case with its related counts.
func (r *CaseRepo) GetByID(ctx context.Context, id string) (*cases.Case, error) {
	q := r.builder.Select(caseColumns...).
		From(caseTable + " c").
		Where(squirrel.Eq{"c.id": id}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var c cases.Case
	if err := r.db.Get(ctx, &c, "cases.get", sql, args...); err != nil {
		if postgres.NotFound(err) {
			return nil, apperror.NewNotFound("case", id)
		}
		return nil, fmt.Errorf("get case: %w", err)
	}
	return &c, nil
}

const commentsQuery = `
	SELECT id, case_id, body, created_by, created_at
	FROM case_comments
	WHERE case_id = $1
	ORDER BY created_at DESC, id
`

func (r *CaseRepo) Comments(ctx context.Context, caseID string) ([]cases.Comment, error) {
	var rows []cases.Comment
	if err := r.db.Select(ctx, &rows, "cases.comments", commentsQuery, caseID); err != nil {
		return nil, fmt.Errorf("case comments: %w", err)
	}
	return rows, nil
}

const timelineQuery = `
	SELECT id, case_id, field, old_value, new_value, changed_by, changed_at
	FROM case_history
	WHERE case_id = $1
	ORDER BY changed_at DESC, id
`

func (r *CaseRepo) Timeline(ctx context.Context, caseID string) ([]cases.TimelineEvent, error) {
	var rows []cases.TimelineEvent
	if err := r.db.Select(ctx, &rows, "cases.timeline", timelineQuery, caseID); err != nil {
		return nil, fmt.Errorf("case timeline: %w", err)
	}
	return rows, nil
}

// Ensure interface compliance
var _ cases.Repository = (*CaseRepo)(nil)
