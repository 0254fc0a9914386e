package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
	"github.com/lanzy-lanzy/tailoring/internal/domain/workshop"
)

// GormCommissionRepository implements CommissionRepository using GORM
type GormCommissionRepository struct {
	db *gorm.DB
}

// NewGormCommissionRepository creates a new GormCommissionRepository
func NewGormCommissionRepository(db *gorm.DB) *GormCommissionRepository {
	return &GormCommissionRepository{db: db}
}

// FindByID finds a commission by its ID
func (r *GormCommissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*workshop.Commission, error) {
	var commission workshop.Commission
	if err := r.db.WithContext(ctx).First(&commission, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &commission, nil
}

// FindByTask finds the commission credited for a task
func (r *GormCommissionRepository) FindByTask(ctx context.Context, taskID uuid.UUID) (*workshop.Commission, error) {
	var commission workshop.Commission
	if err := r.db.WithContext(ctx).First(&commission, "task_id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &commission, nil
}

// FindAll finds all commissions matching the filter
func (r *GormCommissionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]workshop.Commission, error) {
	var commissions []workshop.Commission
	query := r.applyFilter(r.db.WithContext(ctx).Model(&workshop.Commission{}), filter)

	if err := query.Find(&commissions).Error; err != nil {
		return nil, err
	}
	return commissions, nil
}

// FindByTailorInRange finds a tailor's commissions created within [from, to)
func (r *GormCommissionRepository) FindByTailorInRange(ctx context.Context, tailorID uuid.UUID, from, to time.Time) ([]workshop.Commission, error) {
	var commissions []workshop.Commission
	if err := r.db.WithContext(ctx).
		Where("tailor_id = ? AND created_at >= ? AND created_at < ?", tailorID, from, to).
		Order("created_at DESC").
		Find(&commissions).Error; err != nil {
		return nil, err
	}
	return commissions, nil
}

// FindInRange finds all commissions created within [from, to)
func (r *GormCommissionRepository) FindInRange(ctx context.Context, from, to time.Time) ([]workshop.Commission, error) {
	var commissions []workshop.Commission
	if err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at DESC").
		Find(&commissions).Error; err != nil {
		return nil, err
	}
	return commissions, nil
}

// Save creates or updates a commission
func (r *GormCommissionRepository) Save(ctx context.Context, commission *workshop.Commission) error {
	return r.db.WithContext(ctx).Save(commission).Error
}

// Count counts commissions matching the filter
func (r *GormCommissionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&workshop.Commission{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormCommissionRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query.Order("created_at DESC")
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormCommissionRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("commission_number ILIKE ? OR customer_name ILIKE ?", pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "tailor_id":
			query = query.Where("tailor_id = ?", value)
		}
	}
	return query
}

// Ensure GormCommissionRepository implements CommissionRepository
var _ workshop.CommissionRepository = (*GormCommissionRepository)(nil)
