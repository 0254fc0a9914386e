// Package catalog contains application services for the garment type catalog.
package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/lanzy-lanzy/tailoring/internal/domain/catalog"
	"github.com/lanzy-lanzy/tailoring/internal/domain/identity"
	"github.com/lanzy-lanzy/tailoring/internal/domain/inventory"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

// GarmentTypeService handles garment type catalog operations
type GarmentTypeService struct {
	garmentTypeRepo catalog.GarmentTypeRepository
	accessoryRepo   inventory.AccessoryRepository
	userRepo        identity.UserRepository
}

// NewGarmentTypeService creates a new GarmentTypeService
func NewGarmentTypeService(
	garmentTypeRepo catalog.GarmentTypeRepository,
	accessoryRepo inventory.AccessoryRepository,
	userRepo identity.UserRepository,
) *GarmentTypeService {
	return &GarmentTypeService{
		garmentTypeRepo: garmentTypeRepo,
		accessoryRepo:   accessoryRepo,
		userRepo:        userRepo,
	}
}

// Create adds a new garment type to the catalog
func (s *GarmentTypeService) Create(ctx context.Context, req CreateGarmentTypeRequest) (*GarmentTypeResponse, error) {
	exists, err := s.garmentTypeRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Garment type with this name already exists")
	}

	garmentType, err := catalog.NewGarmentType(
		req.Name,
		req.Description,
		catalog.GarmentCategory(req.Category),
		req.EstimatedFabricMeters,
		req.BasePrice,
	)
	if err != nil {
		return nil, err
	}

	if req.DefaultTailorID != nil {
		if err := s.validateTailor(ctx, *req.DefaultTailorID); err != nil {
			return nil, err
		}
		garmentType.SetDefaultTailor(req.DefaultTailorID)
	}

	if err := s.garmentTypeRepo.Save(ctx, garmentType); err != nil {
		return nil, err
	}

	response := ToGarmentTypeResponse(garmentType)
	return &response, nil
}

// GetByID retrieves a garment type by ID
func (s *GarmentTypeService) GetByID(ctx context.Context, id uuid.UUID) (*GarmentTypeResponse, error) {
	garmentType, err := s.garmentTypeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToGarmentTypeResponse(garmentType)
	return &response, nil
}

// List retrieves garment types with filtering and pagination
func (s *GarmentTypeService) List(ctx context.Context, filter GarmentTypeListFilter) ([]GarmentTypeResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "name"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}
	if filter.Active != nil {
		domainFilter.Filters["active"] = *filter.Active
	}

	garmentTypes, err := s.garmentTypeRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.garmentTypeRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToGarmentTypeResponses(garmentTypes), total, nil
}

// ListActive retrieves the orderable catalog for the intake form
func (s *GarmentTypeService) ListActive(ctx context.Context) ([]GarmentTypeResponse, error) {
	garmentTypes, err := s.garmentTypeRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return ToGarmentTypeResponses(garmentTypes), nil
}

// Update updates a garment type's catalog details
func (s *GarmentTypeService) Update(ctx context.Context, id uuid.UUID, req UpdateGarmentTypeRequest) (*GarmentTypeResponse, error) {
	garmentType, err := s.garmentTypeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := garmentType.Name
	description := garmentType.Description
	category := garmentType.Category
	fabricMeters := garmentType.EstimatedFabricMeters
	basePrice := garmentType.BasePrice
	if req.Name != nil {
		name = *req.Name
	}
	if req.Description != nil {
		description = *req.Description
	}
	if req.Category != nil {
		category = catalog.GarmentCategory(*req.Category)
	}
	if req.EstimatedFabricMeters != nil {
		fabricMeters = *req.EstimatedFabricMeters
	}
	if req.BasePrice != nil {
		basePrice = *req.BasePrice
	}

	if req.Name != nil && *req.Name != garmentType.Name {
		exists, err := s.garmentTypeRepo.ExistsByName(ctx, *req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Garment type with this name already exists")
		}
	}

	if err := garmentType.Update(name, description, category, fabricMeters, basePrice); err != nil {
		return nil, err
	}

	if req.DefaultTailorID != nil {
		if err := s.validateTailor(ctx, *req.DefaultTailorID); err != nil {
			return nil, err
		}
		garmentType.SetDefaultTailor(req.DefaultTailorID)
	}

	if req.Active != nil {
		if *req.Active {
			garmentType.Activate()
		} else {
			garmentType.Deactivate()
		}
	}

	if err := s.garmentTypeRepo.SaveWithLock(ctx, garmentType); err != nil {
		return nil, err
	}

	response := ToGarmentTypeResponse(garmentType)
	return &response, nil
}

// SetAccessoryRequirement adds or replaces a per-unit accessory requirement
func (s *GarmentTypeService) SetAccessoryRequirement(ctx context.Context, id uuid.UUID, req AccessoryRequirementRequest) (*GarmentTypeResponse, error) {
	garmentType, err := s.garmentTypeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Requirement must point at a real stock item
	if _, err := s.accessoryRepo.FindByID(ctx, req.AccessoryID); err != nil {
		return nil, err
	}

	// Replace an existing requirement for the same accessory
	for _, existing := range garmentType.AccessoryRequirements {
		if existing.AccessoryID == req.AccessoryID {
			if err := garmentType.RemoveAccessoryRequirement(req.AccessoryID); err != nil {
				return nil, err
			}
			break
		}
	}

	if _, err := garmentType.AddAccessoryRequirement(req.AccessoryID, req.QuantityRequired); err != nil {
		return nil, err
	}

	if err := s.garmentTypeRepo.Save(ctx, garmentType); err != nil {
		return nil, err
	}

	response := ToGarmentTypeResponse(garmentType)
	return &response, nil
}

// RemoveAccessoryRequirement removes the requirement for the given accessory
func (s *GarmentTypeService) RemoveAccessoryRequirement(ctx context.Context, id, accessoryID uuid.UUID) (*GarmentTypeResponse, error) {
	garmentType, err := s.garmentTypeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := garmentType.RemoveAccessoryRequirement(accessoryID); err != nil {
		return nil, err
	}

	if err := s.garmentTypeRepo.Save(ctx, garmentType); err != nil {
		return nil, err
	}

	response := ToGarmentTypeResponse(garmentType)
	return &response, nil
}

// Delete removes a garment type from the catalog
func (s *GarmentTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.garmentTypeRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.garmentTypeRepo.Delete(ctx, id)
}

// validateTailor checks that the default tailor is an active tailor account
func (s *GarmentTypeService) validateTailor(ctx context.Context, tailorID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, tailorID)
	if err != nil {
		return err
	}
	if !user.IsTailor() {
		return shared.NewDomainError("INVALID_TAILOR", "Default tailor must have the tailor role")
	}
	if !user.Active {
		return shared.NewDomainError("INVALID_TAILOR", "Default tailor account is inactive")
	}
	return nil
}
