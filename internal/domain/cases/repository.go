package cases

import "context"

// Repository loads case data. GetByID returns a not found error for
// unknown IDs.
type Repository interface {
	Summary(ctx context.Context, f SummaryFilter) (*Summary, error)
	List(ctx context.Context, f ListFilter) ([]Case, int, error)
	GetByID(ctx context.Context, id string) (*Case, error)
	Comments(ctx context.Context, caseID string) ([]Comment, error)
	Timeline(ctx context.Context, caseID string) ([]TimelineEvent, error)
}
