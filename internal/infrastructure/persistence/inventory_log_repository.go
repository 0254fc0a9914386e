package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lanzy-lanzy/tailoring/internal/domain/inventory"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

// GormInventoryLogRepository implements InventoryLogRepository using GORM
type GormInventoryLogRepository struct {
	db *gorm.DB
}

// NewGormInventoryLogRepository creates a new GormInventoryLogRepository
func NewGormInventoryLogRepository(db *gorm.DB) *GormInventoryLogRepository {
	return &GormInventoryLogRepository{db: db}
}

// FindAll finds all inventory logs matching the filter, newest first
func (r *GormInventoryLogRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.InventoryLog, error) {
	var logs []inventory.InventoryLog
	query := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.InventoryLog{}), filter)

	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// FindByOrder finds all stock movements caused by an order
func (r *GormInventoryLogRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]inventory.InventoryLog, error) {
	var logs []inventory.InventoryLog
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// Save appends a stock movement record. Logs are append-only.
func (r *GormInventoryLogRepository) Save(ctx context.Context, log *inventory.InventoryLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// Count counts inventory logs matching the filter
func (r *GormInventoryLogRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&inventory.InventoryLog{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormInventoryLogRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query.Order("created_at DESC")
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormInventoryLogRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("item_name ILIKE ?", pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "item_type":
			query = query.Where("item_type = ?", value)
		case "item_id":
			query = query.Where("item_id = ?", value)
		case "action":
			query = query.Where("action = ?", value)
		}
	}
	return query
}

// Ensure GormInventoryLogRepository implements InventoryLogRepository
var _ inventory.InventoryLogRepository = (*GormInventoryLogRepository)(nil)
