package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lanzy-lanzy/tailoring/internal/domain/notification"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

// GormSMSLogRepository implements SMSLogRepository using GORM
type GormSMSLogRepository struct {
	db *gorm.DB
}

// NewGormSMSLogRepository creates a new GormSMSLogRepository
func NewGormSMSLogRepository(db *gorm.DB) *GormSMSLogRepository {
	return &GormSMSLogRepository{db: db}
}

// FindAll finds all SMS logs matching the filter, newest first
func (r *GormSMSLogRepository) FindAll(ctx context.Context, filter shared.Filter) ([]notification.SMSLog, error) {
	var logs []notification.SMSLog
	query := r.applyFilter(r.db.WithContext(ctx).Model(&notification.SMSLog{}), filter)

	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// FindByOrder finds all SMS sent about an order
func (r *GormSMSLogRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]notification.SMSLog, error) {
	var logs []notification.SMSLog
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// Save creates or updates an SMS log entry
func (r *GormSMSLogRepository) Save(ctx context.Context, log *notification.SMSLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

// Count counts SMS logs matching the filter
func (r *GormSMSLogRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&notification.SMSLog{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormSMSLogRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query.Order("created_at DESC")
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormSMSLogRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("phone_number ILIKE ?", pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		}
	}
	return query
}

// Ensure GormSMSLogRepository implements SMSLogRepository
var _ notification.SMSLogRepository = (*GormSMSLogRepository)(nil)
