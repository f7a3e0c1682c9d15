package campaigns

import "context"

// Repository loads campaign and task data.
type Repository interface {
	// ListByAccount returns a page of an account's active campaigns plus
	// the total match count, ordered by name.
	ListByAccount(ctx context.Context, f ListFilter) ([]Campaign, int, error)

	// TasksForCampaigns returns the active tasks mapped to any of the
	// given campaigns, optionally narrowed to one owner.
	TasksForCampaigns(ctx context.Context, campaignIDs []string, ownerID string) ([]Task, error)

	// TasksByCampaign returns a page of one campaign's active tasks plus
	// the total match count.
	TasksByCampaign(ctx context.Context, f TasksFilter) ([]Task, int, error)
}
