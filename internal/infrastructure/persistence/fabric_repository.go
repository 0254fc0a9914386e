package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lanzy-lanzy/tailoring/internal/domain/inventory"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

// GormFabricRepository implements FabricRepository using GORM
type GormFabricRepository struct {
	db *gorm.DB
}

// NewGormFabricRepository creates a new GormFabricRepository
func NewGormFabricRepository(db *gorm.DB) *GormFabricRepository {
	return &GormFabricRepository{db: db}
}

// FindByID finds a fabric by its ID
func (r *GormFabricRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Fabric, error) {
	var fabric inventory.Fabric
	if err := r.db.WithContext(ctx).First(&fabric, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &fabric, nil
}

// FindAll finds all fabrics matching the filter
func (r *GormFabricRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Fabric, error) {
	var fabrics []inventory.Fabric
	query := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.Fabric{}), filter)

	if err := query.Find(&fabrics).Error; err != nil {
		return nil, err
	}
	return fabrics, nil
}

// FindLowStock finds fabrics at or below the low-stock threshold
func (r *GormFabricRepository) FindLowStock(ctx context.Context) ([]inventory.Fabric, error) {
	var fabrics []inventory.Fabric
	if err := r.db.WithContext(ctx).
		Where("stock_meters < ?", inventory.LowFabricStockMeters).
		Order("stock_meters ASC").
		Find(&fabrics).Error; err != nil {
		return nil, err
	}
	return fabrics, nil
}

// Save creates or updates a fabric
func (r *GormFabricRepository) Save(ctx context.Context, fabric *inventory.Fabric) error {
	return r.db.WithContext(ctx).Save(fabric).Error
}

// SaveWithLock saves a fabric with optimistic locking. Stock deductions
// run concurrently with order intake, so the version check is what keeps
// two orders from spending the same meters.
func (r *GormFabricRepository) SaveWithLock(ctx context.Context, fabric *inventory.Fabric) error {
	result := r.db.WithContext(ctx).
		Model(fabric).
		Where("id = ? AND version = ?", fabric.ID, fabric.Version-1).
		Updates(fabric)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_ERROR", "The fabric record has been modified by another transaction")
	}
	return nil
}

// Delete deletes a fabric
func (r *GormFabricRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.Fabric{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts fabrics matching the filter
func (r *GormFabricRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&inventory.Fabric{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormFabricRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, FabricSortFields, "name")
	orderDir := ValidateSortOrder(filter.OrderDir)
	if orderBy == "name" && filter.OrderBy == "" {
		orderDir = "ASC"
	}
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormFabricRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR color ILIKE ?", pattern, pattern)
	}
	return query
}

// Ensure GormFabricRepository implements FabricRepository
var _ inventory.FabricRepository = (*GormFabricRepository)(nil)
