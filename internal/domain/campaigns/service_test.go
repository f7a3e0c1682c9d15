package campaigns

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agent360/internal/core/apperror"
)

// stubRepo implements Repository with canned results.
type stubRepo struct {
	campaigns []Campaign
	tasks     []Task
	total     int

	lastIDs   []string
	lastOwner string
	lastTasks TasksFilter
}

func (s *stubRepo) ListByAccount(_ context.Context, _ ListFilter) ([]Campaign, int, error) {
	return s.campaigns, s.total, nil
}

func (s *stubRepo) TasksForCampaigns(_ context.Context, ids []string, ownerID string) ([]Task, error) {
	s.lastIDs = ids
	s.lastOwner = ownerID
	return s.tasks, nil
}

func (s *stubRepo) TasksByCampaign(_ context.Context, f TasksFilter) ([]Task, int, error) {
	s.lastTasks = f
	return s.tasks, s.total, nil
}

func strp(s string) *string { return &s }

func fieldNames(appErr *apperror.AppError) []string {
	names := make([]string, 0, len(appErr.Fields))
	for _, f := range appErr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestListWithTasks_RequiresAccountID(t *testing.T) {
	svc := NewService(&stubRepo{})

	_, _, err := svc.ListWithTasks(context.Background(), ListFilter{})
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Contains(t, fieldNames(appErr), "account_id")
}

func TestListWithTasks_RejectsUnknownType(t *testing.T) {
	svc := NewService(&stubRepo{})

	_, _, err := svc.ListWithTasks(context.Background(),
		ListFilter{AccountID: "ACC001", Type: "team"})
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Contains(t, fieldNames(appErr), "type")
}

func TestListWithTasks_MyTypeRequiresUserID(t *testing.T) {
	svc := NewService(&stubRepo{})

	_, _, err := svc.ListWithTasks(context.Background(),
		ListFilter{AccountID: "ACC001", Type: TypeMy})
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Contains(t, fieldNames(appErr), "user_id")
}

func TestListWithTasks_GroupsTasksByCampaign(t *testing.T) {
	repo := &stubRepo{
		campaigns: []Campaign{{ID: "CMP1", Name: "Spring Promo"}, {ID: "CMP2", Name: "Winter Push"}},
		tasks: []Task{
			{ID: "T1", Subject: "Call", WhatID: strp("CMP1")},
			{ID: "T2", Subject: "Visit", WhatID: strp("CMP2")},
			{ID: "T3", Subject: "Follow up", WhatID: strp("CMP1")},
			{ID: "T4", Subject: "Orphan", WhatID: nil},
		},
		total: 2,
	}
	svc := NewService(repo)

	items, total, err := svc.ListWithTasks(context.Background(), ListFilter{AccountID: "ACC001"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, items, 2)

	assert.Equal(t, "CMP1", items[0].ID)
	require.Len(t, items[0].Tasks, 2)
	assert.Equal(t, "T1", items[0].Tasks[0].ID)
	assert.Equal(t, "T3", items[0].Tasks[1].ID)

	assert.Equal(t, "CMP2", items[1].ID)
	require.Len(t, items[1].Tasks, 1)

	assert.Equal(t, []string{"CMP1", "CMP2"}, repo.lastIDs)
	assert.Equal(t, "", repo.lastOwner)
}

func TestListWithTasks_MyTypePassesOwner(t *testing.T) {
	repo := &stubRepo{campaigns: []Campaign{{ID: "CMP1"}}, total: 1}
	svc := NewService(repo)

	_, _, err := svc.ListWithTasks(context.Background(),
		ListFilter{AccountID: "ACC001", Type: TypeMy, UserID: "USR007"})
	require.NoError(t, err)
	assert.Equal(t, "USR007", repo.lastOwner)
}

func TestListWithTasks_SkipsTaskQueryWhenNoCampaigns(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	items, total, err := svc.ListWithTasks(context.Background(), ListFilter{AccountID: "ACC001"})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 0, total)
	assert.Nil(t, repo.lastIDs)
}

func TestTasksByCampaign_RequiresCampaignID(t *testing.T) {
	svc := NewService(&stubRepo{})

	_, _, err := svc.TasksByCampaign(context.Background(), TasksFilter{})
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Contains(t, fieldNames(appErr), "campaign_id")
}

func TestTasksByCampaign_NormalizesPaging(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	_, _, err := svc.TasksByCampaign(context.Background(),
		TasksFilter{CampaignID: "CMP1", Page: 0, PageSize: 500})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.lastTasks.Page)
	assert.Equal(t, maxPageSize, repo.lastTasks.PageSize)
}
