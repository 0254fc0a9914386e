package workshop

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

// TaskRepository defines the persistence contract for tailoring tasks
type TaskRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Task, error)
	FindByOrder(ctx context.Context, orderID uuid.UUID) (*Task, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Task, error)
	FindByTailor(ctx context.Context, tailorID uuid.UUID, filter shared.Filter) ([]Task, error)
	Save(ctx context.Context, task *Task) error
	SaveWithLock(ctx context.Context, task *Task) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountOpenByTailor(ctx context.Context, tailorID uuid.UUID) (int64, error)
	CountByTailorAndStatus(ctx context.Context, tailorID uuid.UUID, status TaskStatus) (int64, error)
}

// CommissionRepository defines the persistence contract for tailor commissions
type CommissionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Commission, error)
	FindByTask(ctx context.Context, taskID uuid.UUID) (*Commission, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Commission, error)
	FindByTailorInRange(ctx context.Context, tailorID uuid.UUID, from, to time.Time) ([]Commission, error)
	FindInRange(ctx context.Context, from, to time.Time) ([]Commission, error)
	Save(ctx context.Context, commission *Commission) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
