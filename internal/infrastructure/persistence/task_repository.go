package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
	"github.com/lanzy-lanzy/tailoring/internal/domain/workshop"
)

// GormTaskRepository implements TaskRepository using GORM
type GormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GormTaskRepository
func NewGormTaskRepository(db *gorm.DB) *GormTaskRepository {
	return &GormTaskRepository{db: db}
}

// FindByID finds a task by its ID
func (r *GormTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*workshop.Task, error) {
	var task workshop.Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

// FindByOrder finds the task for an order. Each order has at most one task.
func (r *GormTaskRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) (*workshop.Task, error) {
	var task workshop.Task
	if err := r.db.WithContext(ctx).First(&task, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

// FindAll finds all tasks matching the filter
func (r *GormTaskRepository) FindAll(ctx context.Context, filter shared.Filter) ([]workshop.Task, error) {
	var tasks []workshop.Task
	query := r.applyFilter(r.db.WithContext(ctx).Model(&workshop.Task{}), filter)

	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByTailor finds all tasks assigned to a tailor
func (r *GormTaskRepository) FindByTailor(ctx context.Context, tailorID uuid.UUID, filter shared.Filter) ([]workshop.Task, error) {
	var tasks []workshop.Task
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&workshop.Task{}).Where("tailor_id = ?", tailorID),
		filter,
	)

	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Save creates or updates a task
func (r *GormTaskRepository) Save(ctx context.Context, task *workshop.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

// SaveWithLock saves a task with optimistic locking (version check)
func (r *GormTaskRepository) SaveWithLock(ctx context.Context, task *workshop.Task) error {
	result := r.db.WithContext(ctx).
		Model(task).
		Where("id = ? AND version = ?", task.ID, task.Version-1).
		Updates(task)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_ERROR", "The task has been modified by another transaction")
	}
	return nil
}

// Count counts tasks matching the filter
func (r *GormTaskRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&workshop.Task{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountOpenByTailor counts a tailor's unfinished tasks. Used to pick the
// least-loaded tailor when an order has no default assignee.
func (r *GormTaskRepository) CountOpenByTailor(ctx context.Context, tailorID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&workshop.Task{}).
		Where("tailor_id = ? AND status IN ?", tailorID,
			[]workshop.TaskStatus{workshop.TaskStatusAssigned, workshop.TaskStatusInProgress}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByTailorAndStatus counts a tailor's tasks in a given status
func (r *GormTaskRepository) CountByTailorAndStatus(ctx context.Context, tailorID uuid.UUID, status workshop.TaskStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&workshop.Task{}).
		Where("tailor_id = ? AND status = ?", tailorID, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormTaskRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, TaskSortFields, "assigned_date")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormTaskRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "tailor_id":
			query = query.Where("tailor_id = ?", value)
		case "commission_paid":
			query = query.Where("commission_paid = ?", value)
		}
	}
	return query
}

// Ensure GormTaskRepository implements TaskRepository
var _ workshop.TaskRepository = (*GormTaskRepository)(nil)
