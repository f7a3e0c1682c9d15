// Package campaigns serves campaign lookups with their mapped tasks.
package campaigns

import "time"

// Campaign mirrors a Salesforce campaign record.
type Campaign struct {
	ID        string     `db:"id"`
	Name      string     `db:"name"`
	Status    string     `db:"status"`
	Type      *string    `db:"type"`
	StartDate *time.Time `db:"start_date"`
	EndDate   *time.Time `db:"end_date"`
	OwnerID   *string    `db:"owner_id"`
	AccountID *string    `db:"account_id"`
	IsActive  bool       `db:"is_active"`
}

// Task mirrors a Salesforce task record. WhatID points at the related
// record, a campaign for the tasks served here.
type Task struct {
	ID           string     `db:"id"`
	Subject      string     `db:"subject"`
	Status       string     `db:"status"`
	Priority     *string    `db:"priority"`
	ActivityDate *time.Time `db:"activity_date"`
	OwnerID      *string    `db:"owner_id"`
	WhatID       *string    `db:"what_id"`
	WhatType     *string    `db:"what_type"`
	WhatName     *string    `db:"what_name"`
}

// CampaignWithTasks is one campaign plus the tasks mapped to it.
type CampaignWithTasks struct {
	Campaign
	Tasks []Task
}

// ListFilter narrows a campaign list query.
type ListFilter struct {
	AccountID string

	// UserID limits mapped tasks to that owner when Type is "my".
	UserID string

	// Type is "all" (every mapped task) or "my" (only UserID's tasks).
	Type string

	Page     int
	PageSize int
}

// TasksFilter narrows a task list query.
type TasksFilter struct {
	CampaignID string
	Page       int
	PageSize   int
}
