// Package campaign_repo provides the PostgreSQL implementation of
// campaign and task lookups.
package campaign_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"agent360/internal/domain/campaigns"
	"agent360/internal/infrastructure/storage/postgres"
)

const (
	campaignTable = "campaigns"
	taskTable     = "tasks"
)

var campaignColumns = []string{
	"id",
	"name",
	"status",
	"type",
	"start_date",
	"end_date",
	"owner_id",
	"account_id",
	"is_active",
}

var taskColumns = []string{
	"id",
	"subject",
	"status",
	"priority",
	"activity_date",
	"owner_id",
	"what_id",
	"what_type",
	"what_name",
}

// CampaignRepo implements campaigns.Repository.
type CampaignRepo struct {
	db      *postgres.DB
	builder squirrel.StatementBuilderType
}

func NewCampaignRepo(db *postgres.DB) *CampaignRepo {
	return &CampaignRepo{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListByAccount returns a page of an account's active campaigns plus the
// total match count, ordered by name.
func (r *CampaignRepo) ListByAccount(ctx context.Context, f campaigns.ListFilter) ([]campaigns.Campaign, int, error) {
	cond := squirrel.And{
		squirrel.Eq{"account_id": f.AccountID},
		squirrel.Eq{"is_active": true},
	}

	q := r.builder.Select(campaignColumns...).
		From(campaignTable).
		Where(cond).
		OrderBy("name ASC", "id ASC").
		Limit(uint64(f.PageSize)).
		Offset(uint64((f.Page - 1) * f.PageSize))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var items []campaigns.Campaign
	if err := r.db.Select(ctx, &items, "campaigns.list", sql, args...); err != nil {
		return nil, 0, fmt.Errorf("campaign list: %w", err)
	}

	sql, args, err = r.builder.Select("COUNT(*) AS total").
		From(campaignTable).
		Where(cond).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var row struct {
		Total int `db:"total"`
	}
	if err := r.db.Get(ctx, &row, "campaigns.count", sql, args...); err != nil {
		return nil, 0, fmt.Errorf("campaign count: %w", err)
	}
	return items, row.Total, nil
}

// TasksForCampaigns returns the active tasks mapped to any of the given
// campaigns, ordered by activity date then subject. A non-empty ownerID
// narrows the result to that owner's tasks.
func (r *CampaignRepo) TasksForCampaigns(ctx context.Context, campaignIDs []string, ownerID string) ([]campaigns.Task, error) {
	q := r.builder.Select(taskColumns...).
		From(taskTable).
		Where(squirrel.Eq{"what_id": campaignIDs}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("activity_date ASC NULLS LAST", "subject ASC")

	if ownerID != "" {
		q = q.Where(squirrel.Eq{"owner_id": ownerID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []campaigns.Task
	if err := r.db.Select(ctx, &items, "campaigns.tasks", sql, args...); err != nil {
		return nil, fmt.Errorf("campaign tasks: %w", err)
	}
	return items, nil
}

// TasksByCampaign returns a page of one campaign's active tasks plus the
// total match count.
func (r *CampaignRepo) TasksByCampaign(ctx context.Context, f campaigns.TasksFilter) ([]campaigns.Task, int, error) {
	cond := squirrel.And{
		squirrel.Eq{"what_id": f.CampaignID},
		squirrel.Eq{"is_active": true},
	}

	q := r.builder.Select(taskColumns...).
		From(taskTable).
		Where(cond).
		OrderBy("activity_date ASC NULLS LAST", "subject ASC", "id ASC").
		Limit(uint64(f.PageSize)).
		Offset(uint64((f.Page - 1) * f.PageSize))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var items []campaigns.Task
	if err := r.db.Select(ctx, &items, "tasks.list", sql, args...); err != nil {
		return nil, 0, fmt.Errorf("task list: %w", err)
	}

	sql, args, err = r.builder.Select("COUNT(*) AS total").
		From(taskTable).
		Where(cond).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var row struct {
		Total int `db:"total"`
	}
	if err := r.db.Get(ctx, &row, "tasks.count", sql, args...); err != nil {
		return nil, 0, fmt.Errorf("task count: %w", err)
	}
	return items, row.Total, nil
}

// Ensure interface compliance
var _ campaigns.Repository = (*CampaignRepo)(nil)
