package dto

import (
	"time"

	"agent360/internal/domain/campaigns"
)

type TaskRow struct {
	ID           string  `json:"id"`
	Subject      string  `json:"subject"`
	Status       string  `json:"status"`
	Priority     *string `json:"priority"`
	ActivityDate *string `json:"activity_date"`
	OwnerID      *string `json:"owner_id"`
	CampaignID   *string `json:"campaign_id"`
	WhatID       *string `json:"what_id"`
	WhatType     *string `json:"what_type"`
	WhatName     *string `json:"what_name"`
}

type CampaignWithTasks struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Type      *string   `json:"type"`
	StartDate *string   `json:"start_date"`
	EndDate   *string   `json:"end_date"`
	OwnerID   *string   `json:"owner_id"`
	AccountID *string   `json:"account_id"`
	IsActive  bool      `json:"is_active"`
	Tasks     []TaskRow `json:"tasks"`
}

func FromTask(t campaigns.Task) TaskRow {
	return TaskRow{
		ID:           t.ID,
		Subject:      t.Subject,
		Status:       t.Status,
		Priority:     t.Priority,
		ActivityDate: dateString(t.ActivityDate),
		OwnerID:      t.OwnerID,
		CampaignID:   t.WhatID,
		WhatID:       t.WhatID,
		WhatType:     t.WhatType,
		WhatName:     t.WhatName,
	}
}

func FromTasks(items []campaigns.Task) []TaskRow {
	out := make([]TaskRow, 0, len(items))
	for _, t := range items {
		out = append(out, FromTask(t))
	}
	return out
}

func FromCampaignsWithTasks(items []campaigns.CampaignWithTasks) []CampaignWithTasks {
	out := make([]CampaignWithTasks, 0, len(items))
	for _, c := range items {
		out = append(out, CampaignWithTasks{
			ID:        c.ID,
			Name:      c.Name,
			Status:    c.Status,
			Type:      c.Type,
			StartDate: dateString(c.StartDate),
			EndDate:   dateString(c.EndDate),
			OwnerID:   c.OwnerID,
			AccountID: c.AccountID,
			IsActive:  c.IsActive,
			Tasks:     FromTasks(c.Tasks),
		})
	}
	return out
}

// dateString renders a date-only value as YYYY-MM-DD.
func dateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
