package cases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agent360/internal/core/apperror"
)

type stubRepo struct {
	summary  *Summary
	cases    []Case
	total    int
	byID     map[string]*Case
	comments []Comment
	timeline []TimelineEvent

	lastList    ListFilter
	lastSummary SummaryFilter
}

func (s *stubRepo) Summary(_ context.Context, f SummaryFilter) (*Summary, error) {
	s.lastSummary = f
	return s.summary, nil
}

func (s *stubRepo) List(_ context.Context, f ListFilter) ([]Case, int, error) {
	s.lastList = f
	return s.cases, s.total, nil
}

func (s *stubRepo) GetByID(_ context.Context, id string) (*Case, error) {
	if c, ok := s.byID[id]; ok {
		return c, nil
	}
	return nil, apperror.NewNotFound("case", id)
}

func (s *stubRepo) Comments(_ context.Context, _ string) ([]Comment, error) {
	return s.comments, nil
}

func (s *stubRepo) Timeline(_ context.Context, _ string) ([]TimelineEvent, error) {
	return s.timeline, nil
}

func TestSummary_RequiresAccountID(t *testing.T) {
	svc := NewService(&stubRepo{})
	_, err := svc.Summary(context.Background(), "", "", "")

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "account_id", appErr.Fields[0].Field)
}

func TestSummary_ParsesDates(t *testing.T) {
	repo := &stubRepo{summary: &Summary{OpenCount: 2, ClosedCount: 3, TotalCount: 5}}
	svc := NewService(repo)

	got, err := svc.Summary(context.Background(), "ACC001", "2025-01-01", "2025-06-30")
	require.NoError(t, err)
	assert.Equal(t, 5, got.TotalCount)

	require.NotNil(t, repo.lastSummary.OpenedFrom)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *repo.lastSummary.OpenedFrom)
	require.NotNil(t, repo.lastSummary.OpenedTo)
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), *repo.lastSummary.OpenedTo)
}

func TestSummary_RejectsBadDate(t *testing.T) {
	svc := NewService(&stubRepo{})
	_, err := svc.Summary(context.Background(), "ACC001", "01/01/2025", "")

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "opened_from", appErr.Fields[0].Field)
}

func TestList_Defaults(t *testing.T) {
	repo := &stubRepo{cases: []Case{{ID: "C1"}}, total: 1}
	svc := NewService(repo)

	items, total, err := svc.List(context.Background(), ListFilter{AccountID: "ACC001"})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, total)

	assert.Equal(t, StatusAll, repo.lastList.Status)
	assert.Equal(t, DefaultOrdering, repo.lastList.Ordering)
	assert.Equal(t, 1, repo.lastList.Page)
	assert.Equal(t, defaultPageSize, repo.lastList.PageSize)
}

func TestList_RejectsUnknownStatusAndOrdering(t *testing.T) {
	svc := NewService(&stubRepo{})

	_, _, err := svc.List(context.Background(), ListFilter{AccountID: "ACC001", Status: "pending"})
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "status", appErr.Fields[0].Field)

	_, _, err = svc.List(context.Background(), ListFilter{AccountID: "ACC001", Ordering: "-priority"})
	appErr, ok = apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "ordering", appErr.Fields[0].Field)
}

func TestList_CapsPageSize(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	_, _, err := svc.List(context.Background(), ListFilter{AccountID: "ACC001", PageSize: 500})
	require.NoError(t, err)
	assert.Equal(t, maxPageSize, repo.lastList.PageSize)
}

func TestListFilterNormalize(t *testing.T) {
	f := ListFilter{Page: 0, PageSize: 0}.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, defaultPageSize, f.PageSize)

	f = ListFilter{Page: -2, PageSize: 500}.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, maxPageSize, f.PageSize)
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(&stubRepo{byID: map[string]*Case{}})
	_, err := svc.Get(context.Background(), "missing")
	assert.True(t, apperror.IsNotFound(err))
}

func TestComments_UnknownCase(t *testing.T) {
	svc := NewService(&stubRepo{byID: map[string]*Case{}})
	_, err := svc.Comments(context.Background(), "missing")
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.Timeline(context.Background(), "missing")
	assert.True(t, apperror.IsNotFound(err))
}

func TestOrderColumn(t *testing.T) {
	col, ok := OrderColumn("opened_at")
	assert.True(t, ok)
	assert.Equal(t, "sf_created_date", col)

	_, ok = OrderColumn("priority")
	assert.False(t, ok)
}
