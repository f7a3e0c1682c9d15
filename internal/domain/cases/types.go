// Package cases serves complaint case lookups: per-account summaries,
// filtered lists, and case detail with comments and change history.
package cases

import "time"

// Summary counts an account's cases by state.
type Summary struct {
	OpenCount   int `db:"open_count" json:"open_count"`
	ClosedCount int `db:"closed_count" json:"closed_count"`
	TotalCount  int `db:"total_count" json:"total_count"`
}

// Case mirrors a Salesforce case record.
type Case struct {
	ID            string    `db:"id" json:"id"`
	AccountID     string    `db:"account_id" json:"account_id"`
	CaseNumber    string    `db:"case_number" json:"case_number"`
	Status        string    `db:"status" json:"status"`
	Subject       string    `db:"subject" json:"subject"`
	Description   *string   `db:"description" json:"description"`
	Priority      *string   `db:"priority" json:"priority"`
	Origin        *string   `db:"origin" json:"origin"`
	IsClosed      bool      `db:"is_closed" json:"is_closed"`
	OpenedAt      time.Time `db:"sf_created_date" json:"opened_at"`
	LastModified  time.Time `db:"last_modified_date" json:"last_modified"`
	CommentsCount int       `db:"comments_count" json:"comments_count"`
	TimelineCount int       `db:"timeline_count" json:"timeline_count"`
}

// Comment is one comment attached to a case.
type Comment struct {
	ID        string    `db:"id" json:"id"`
	CaseID    string    `db:"case_id" json:"case_id"`
	Body      string    `db:"body" json:"body"`
	CreatedBy *string   `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// TimelineEvent is one field change from the case history.
type TimelineEvent struct {
	ID        string    `db:"id" json:"id"`
	CaseID    string    `db:"case_id" json:"case_id"`
	Field     string    `db:"field" json:"field"`
	OldValue  *string   `db:"old_value" json:"old_value"`
	NewValue  *string   `db:"new_value" json:"new_value"`
	ChangedBy *string   `db:"changed_by" json:"changed_by"`
	ChangedAt time.Time `db:"changed_at" json:"changed_at"`
}

// ListFilter narrows and orders a case list query.
type ListFilter struct {
	AccountID string
	Status    string
	Ordering  string
	Page      int
	PageSize  int
}

// SummaryFilter narrows a summary query by opening date.
type SummaryFilter struct {
	AccountID  string
	OpenedFrom *time.Time
	OpenedTo   *time.Time
}
