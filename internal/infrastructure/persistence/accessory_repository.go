package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lanzy-lanzy/tailoring/internal/domain/inventory"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

// GormAccessoryRepository implements AccessoryRepository using GORM
type GormAccessoryRepository struct {
	db *gorm.DB
}

// NewGormAccessoryRepository creates a new GormAccessoryRepository
func NewGormAccessoryRepository(db *gorm.DB) *GormAccessoryRepository {
	return &GormAccessoryRepository{db: db}
}

// FindByID finds an accessory by its ID
func (r *GormAccessoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Accessory, error) {
	var accessory inventory.Accessory
	if err := r.db.WithContext(ctx).First(&accessory, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &accessory, nil
}

// FindByIDs finds multiple accessories by their IDs
func (r *GormAccessoryRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]inventory.Accessory, error) {
	if len(ids) == 0 {
		return []inventory.Accessory{}, nil
	}

	var accessories []inventory.Accessory
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&accessories).Error; err != nil {
		return nil, err
	}
	return accessories, nil
}

// FindAll finds all accessories matching the filter
func (r *GormAccessoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Accessory, error) {
	var accessories []inventory.Accessory
	query := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.Accessory{}), filter)

	if err := query.Find(&accessories).Error; err != nil {
		return nil, err
	}
	return accessories, nil
}

// FindLowStock finds accessories at or below the low-stock threshold
func (r *GormAccessoryRepository) FindLowStock(ctx context.Context) ([]inventory.Accessory, error) {
	var accessories []inventory.Accessory
	if err := r.db.WithContext(ctx).
		Where("stock_quantity < ?", inventory.LowAccessoryStockQuantity).
		Order("stock_quantity ASC").
		Find(&accessories).Error; err != nil {
		return nil, err
	}
	return accessories, nil
}

// Save creates or updates an accessory
func (r *GormAccessoryRepository) Save(ctx context.Context, accessory *inventory.Accessory) error {
	return r.db.WithContext(ctx).Save(accessory).Error
}

// SaveWithLock saves an accessory with optimistic locking (version check)
func (r *GormAccessoryRepository) SaveWithLock(ctx context.Context, accessory *inventory.Accessory) error {
	result := r.db.WithContext(ctx).
		Model(accessory).
		Where("id = ? AND version = ?", accessory.ID, accessory.Version-1).
		Updates(accessory)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_ERROR", "The accessory record has been modified by another transaction")
	}
	return nil
}

// Delete deletes an accessory
func (r *GormAccessoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.Accessory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts accessories matching the filter
func (r *GormAccessoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&inventory.Accessory{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormAccessoryRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, AccessorySortFields, "name")
	orderDir := ValidateSortOrder(filter.OrderDir)
	if orderBy == "name" && filter.OrderBy == "" {
		orderDir = "ASC"
	}
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormAccessoryRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ?", pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "unit":
			query = query.Where("unit = ?", value)
		}
	}
	return query
}

// Ensure GormAccessoryRepository implements AccessoryRepository
var _ inventory.AccessoryRepository = (*GormAccessoryRepository)(nil)
