package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lanzy-lanzy/tailoring/internal/domain/catalog"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

// GormGarmentTypeRepository implements GarmentTypeRepository using GORM
type GormGarmentTypeRepository struct {
	db *gorm.DB
}

// NewGormGarmentTypeRepository creates a new GormGarmentTypeRepository
func NewGormGarmentTypeRepository(db *gorm.DB) *GormGarmentTypeRepository {
	return &GormGarmentTypeRepository{db: db}
}

// FindByID finds a garment type by its ID, preloading accessory requirements
func (r *GormGarmentTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.GarmentType, error) {
	var garmentType catalog.GarmentType
	if err := r.db.WithContext(ctx).
		Preload("AccessoryRequirements").
		First(&garmentType, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &garmentType, nil
}

// FindByName finds a garment type by its exact name
func (r *GormGarmentTypeRepository) FindByName(ctx context.Context, name string) (*catalog.GarmentType, error) {
	var garmentType catalog.GarmentType
	if err := r.db.WithContext(ctx).
		Preload("AccessoryRequirements").
		First(&garmentType, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &garmentType, nil
}

// FindAll finds all garment types matching the filter
func (r *GormGarmentTypeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.GarmentType, error) {
	var garmentTypes []catalog.GarmentType
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.GarmentType{}).Preload("AccessoryRequirements"), filter)

	if err := query.Find(&garmentTypes).Error; err != nil {
		return nil, err
	}
	return garmentTypes, nil
}

// FindActive finds all active garment types ordered by name
func (r *GormGarmentTypeRepository) FindActive(ctx context.Context) ([]catalog.GarmentType, error) {
	var garmentTypes []catalog.GarmentType
	if err := r.db.WithContext(ctx).
		Preload("AccessoryRequirements").
		Where("active = ?", true).
		Order("name ASC").
		Find(&garmentTypes).Error; err != nil {
		return nil, err
	}
	return garmentTypes, nil
}

// Save creates or updates a garment type with its accessory requirements
func (r *GormGarmentTypeRepository) Save(ctx context.Context, garmentType *catalog.GarmentType) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Replace accessory requirements wholesale so removals stick
		if err := tx.Where("garment_type_id = ?", garmentType.ID).
			Delete(&catalog.AccessoryRequirement{}).Error; err != nil {
			return err
		}
		return tx.Save(garmentType).Error
	})
}

// SaveWithLock saves a garment type with optimistic locking (version check)
func (r *GormGarmentTypeRepository) SaveWithLock(ctx context.Context, garmentType *catalog.GarmentType) error {
	result := r.db.WithContext(ctx).
		Model(garmentType).
		Omit("AccessoryRequirements").
		Where("id = ? AND version = ?", garmentType.ID, garmentType.Version-1).
		Updates(garmentType)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_ERROR", "The garment type has been modified by another transaction")
	}
	return nil
}

// Delete deletes a garment type and its accessory requirements
func (r *GormGarmentTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("garment_type_id = ?", id).
			Delete(&catalog.AccessoryRequirement{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&catalog.GarmentType{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts garment types matching the filter
func (r *GormGarmentTypeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&catalog.GarmentType{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByName checks if a garment type with the given name exists
func (r *GormGarmentTypeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.GarmentType{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormGarmentTypeRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, GarmentTypeSortFields, "name")
	orderDir := ValidateSortOrder(filter.OrderDir)
	if orderBy == "name" && filter.OrderBy == "" {
		orderDir = "ASC"
	}
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormGarmentTypeRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "category":
			query = query.Where("category = ?", value)
		case "active":
			query = query.Where("active = ?", value)
		}
	}
	return query
}

// Ensure GormGarmentTypeRepository implements GarmentTypeRepository
var _ catalog.GarmentTypeRepository = (*GormGarmentTypeRepository)(nil)
