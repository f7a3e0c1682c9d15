package campaigns

import (
	"context"
	"fmt"

	"agent360/internal/core/apperror"
)

const (
	TypeAll = "all"
	TypeMy  = "my"

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

// Normalize clamps paging values to their valid bounds.
func (f TasksFilter) Normalize() TasksFilter {
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

// ListWithTasks returns a page of an account's active campaigns, each
// carrying its mapped active tasks. Type "my" narrows the tasks to the
// given user; the campaign set itself is unaffected.
func (s *Service) ListWithTasks(ctx context.Context, f ListFilter) ([]CampaignWithTasks, int, error) {
	if f.Type == "" {
		f.Type = TypeAll
	}

	appErr := apperror.NewValidation("Invalid query parameters")
	if f.AccountID == "" {
		appErr.WithField("account_id", "account_id is required")
	}
	if f.Type != TypeAll && f.Type != TypeMy {
		appErr.WithField("type", "type must be either 'all' or 'my'")
	}
	if f.Type == TypeMy && f.UserID == "" {
		appErr.WithField("user_id", "user_id is required when type is 'my'")
	}
	if len(appErr.Fields) > 0 {
		return nil, 0, appErr
	}

	f = f.Normalize()

	camps, total, err := s.repo.ListByAccount(ctx, f)
	if err != nil {
		return nil, 0, apperror.NewInternal(fmt.Errorf("campaign list: %w", err))
	}

	out := make([]CampaignWithTasks, 0, len(camps))
	if len(camps) == 0 {
		return out, total, nil
	}

	ids := make([]string, 0, len(camps))
	for _, c := range camps {
		ids = append(ids, c.ID)
	}

	owner := ""
	if f.Type == TypeMy {
		owner = f.UserID
	}
	tasks, err := s.repo.TasksForCampaigns(ctx, ids, owner)
	if err != nil {
		return nil, 0, apperror.NewInternal(fmt.Errorf("campaign tasks: %w", err))
	}

	byCampaign := make(map[string][]Task, len(camps))
	for _, t := range tasks {
		if t.WhatID == nil || *t.WhatID == "" {
			continue
		}
		byCampaign[*t.WhatID] = append(byCampaign[*t.WhatID], t)
	}

	for _, c := range camps {
		out = append(out, CampaignWithTasks{Campaign: c, Tasks: byCampaign[c.ID]})
	}
	return out, total, nil
}

// TasksByCampaign returns a page of one campaign's active tasks plus the
// total match count.
func (s *Service) TasksByCampaign(ctx context.Context, f TasksFilter) ([]Task, int, error) {
	if f.CampaignID == "" {
		return nil, 0, apperror.NewValidation("Invalid query parameters").
			WithField("campaign_id", "campaign_id is required")
	}

	f = f.Normalize()

	tasks, total, err := s.repo.TasksByCampaign(ctx, f)
	if err != nil {
		return nil, 0, apperror.NewInternal(fmt.Errorf("tasks by campaign: %w", err))
	}
	return tasks, total, nil
}
