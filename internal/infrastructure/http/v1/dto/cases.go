package dto

import (
	"time"

	"agent360/internal/domain/cases"
)

type CaseSummary struct {
	OpenCount   int `json:"open_count"`
	ClosedCount int `json:"closed_count"`
	TotalCount  int `json:"total_count"`
}

func FromCaseSummary(s *cases.Summary) CaseSummary {
	return CaseSummary{
		OpenCount:   s.OpenCount,
		ClosedCount: s.ClosedCount,
		TotalCount:  s.TotalCount,
	}
}

type CaseResponse struct {
	ID            string    `json:"id"`
	AccountID     string    `json:"account_id"`
	CaseNumber    string    `json:"case_number"`
	Status        string    `json:"status"`
	Subject       string    `json:"subject"`
	Description   *string   `json:"description"`
	Priority      *string   `json:"priority"`
	Origin        *string   `json:"origin"`
	IsClosed      bool      `json:"is_closed"`
	OpenedAt      time.Time `json:"opened_at"`
	LastModified  time.Time `json:"last_modified"`
	CommentsCount int       `json:"comments_count"`
	TimelineCount int       `json:"timeline_count"`
}

func FromCase(c *cases.Case) CaseResponse {
	return CaseResponse{
		ID:            c.ID,
		AccountID:     c.AccountID,
		CaseNumber:    c.CaseNumber,
		Status:        c.Status,
		Subject:       c.Subject,
		Description:   c.Description,
		Priority:      c.Priority,
		Origin:        c.Origin,
		IsClosed:      c.IsClosed,
		OpenedAt:      c.OpenedAt,
		LastModified:  c.LastModified,
		CommentsCount: c.CommentsCount,
		TimelineCount: c.TimelineCount,
	}
}

func FromCases(items []cases.Case) []CaseResponse {
	out := make([]CaseResponse, 0, len(items))
	for i := range items {
		out = append(out, FromCase(&items[i]))
	}
	return out
}

type CaseComment struct {
	ID        string    `json:"id"`
	CaseID    string    `json:"case_id"`
	Body      string    `json:"body"`
	CreatedBy *string   `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func FromCaseComments(items []cases.Comment) []CaseComment {
	out := make([]CaseComment, 0, len(items))
	for _, c := range items {
		out = append(out, CaseComment{
			ID:        c.ID,
			CaseID:    c.CaseID,
			Body:      c.Body,
			CreatedBy: c.CreatedBy,
			CreatedAt: c.CreatedAt,
		})
	}
	return out
}

type CaseTimelineEvent struct {
	ID        string    `json:"id"`
	CaseID    string    `json:"case_id"`
	Field     string    `json:"field"`
	OldValue  *string   `json:"old_value"`
	NewValue  *string   `json:"new_value"`
	ChangedBy *string   `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

func FromCaseTimeline(items []cases.TimelineEvent) []CaseTimelineEvent {
	out := make([]CaseTimelineEvent, 0, len(items))
	for _, e := range items {
		out = append(out, CaseTimelineEvent{
			ID:        e.ID,
			CaseID:    e.CaseID,
			Field:     e.Field,
			OldValue:  e.OldValue,
			NewValue:  e.NewValue,
			ChangedBy: e.ChangedBy,
			ChangedAt: e.ChangedAt,
		})
	}
	return out
}
