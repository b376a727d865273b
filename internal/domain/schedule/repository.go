package schedule

import "context"

// Repository defines the operations for persisting and retrieving report
// schedules. The core receives schedules as loaded values and hands updated
// values back to be persisted; it performs no storage I/O itself.
type Repository interface {
	Create(ctx context.Context, s *Schedule) error
	GetByID(ctx context.Context, id string) (*Schedule, error)
	Update(ctx context.Context, s *Schedule) error
	ListEnabled(ctx context.Context) ([]*Schedule, error)
	ListAll(ctx context.Context) ([]*Schedule, error)
}
