package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanzy-lanzy/tailoring/internal/domain/inventory"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

// AccessoryService handles accessory stock operations
type AccessoryService struct {
	accessoryRepo inventory.AccessoryRepository
	logRepo       inventory.InventoryLogRepository
}

// NewAccessoryService creates a new AccessoryService
func NewAccessoryService(accessoryRepo inventory.AccessoryRepository, logRepo inventory.InventoryLogRepository) *AccessoryService {
	return &AccessoryService{
		accessoryRepo: accessoryRepo,
		logRepo:       logRepo,
	}
}

// Create registers a new accessory. Opening stock is logged as an addition.
func (s *AccessoryService) Create(ctx context.Context, req CreateAccessoryRequest, performedBy uuid.UUID) (*AccessoryResponse, error) {
	accessory, err := inventory.NewAccessory(req.Name, inventory.AccessoryUnit(req.Unit), req.StockQuantity, req.PricePerUnit)
	if err != nil {
		return nil, err
	}

	if err := s.accessoryRepo.Save(ctx, accessory); err != nil {
		return nil, err
	}

	if accessory.StockQuantity.GreaterThan(decimal.Zero) {
		s.writeLog(ctx, accessory, inventory.LogActionAdd, accessory.StockQuantity, decimal.Zero, "Opening stock", performedBy)
	}

	response := ToAccessoryResponse(accessory)
	return &response, nil
}

// GetByID retrieves an accessory by ID
func (s *AccessoryService) GetByID(ctx context.Context, id uuid.UUID) (*AccessoryResponse, error) {
	accessory, err := s.accessoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToAccessoryResponse(accessory)
	return &response, nil
}

// List retrieves accessories with filtering and pagination
func (s *AccessoryService) List(ctx context.Context, filter ListFilter) ([]AccessoryResponse, int64, error) {
	domainFilter := buildListFilter(filter, "name", "asc")

	accessories, err := s.accessoryRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.accessoryRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToAccessoryResponses(accessories), total, nil
}

// ListLowStock retrieves accessories below the low-stock threshold
func (s *AccessoryService) ListLowStock(ctx context.Context) ([]AccessoryResponse, error) {
	accessories, err := s.accessoryRepo.FindLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return ToAccessoryResponses(accessories), nil
}

// Update updates an accessory's descriptive fields and price
func (s *AccessoryService) Update(ctx context.Context, id uuid.UUID, req UpdateAccessoryRequest) (*AccessoryResponse, error) {
	accessory, err := s.accessoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := accessory.Name
	unit := accessory.Unit
	price := accessory.PricePerUnit
	if req.Name != nil {
		name = *req.Name
	}
	if req.Unit != nil {
		unit = inventory.AccessoryUnit(*req.Unit)
	}
	if req.PricePerUnit != nil {
		price = *req.PricePerUnit
	}

	if err := accessory.Update(name, unit, price); err != nil {
		return nil, err
	}

	if err := s.accessoryRepo.SaveWithLock(ctx, accessory); err != nil {
		return nil, err
	}

	response := ToAccessoryResponse(accessory)
	return &response, nil
}

// ApplyMovement applies a manual stock movement (add, deduct, or adjust)
// and records it in the inventory log
func (s *AccessoryService) ApplyMovement(ctx context.Context, id uuid.UUID, req StockMovementRequest, performedBy uuid.UUID) (*AccessoryResponse, error) {
	accessory, err := s.accessoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	action := inventory.LogAction(req.Action)
	previous := accessory.StockQuantity

	switch action {
	case inventory.LogActionAdd:
		err = accessory.Restore(req.Quantity)
	case inventory.LogActionDeduct:
		err = accessory.Deduct(req.Quantity)
	case inventory.LogActionAdjust:
		err = accessory.Adjust(req.Quantity)
	default:
		return nil, shared.NewDomainError("INVALID_ACTION", "Action must be 'add', 'deduct', or 'adjust'")
	}
	if err != nil {
		return nil, err
	}

	if err := s.accessoryRepo.SaveWithLock(ctx, accessory); err != nil {
		return nil, err
	}

	s.writeLog(ctx, accessory, action, req.Quantity, previous, req.Notes, performedBy)

	response := ToAccessoryResponse(accessory)
	return &response, nil
}

// Delete removes an accessory
func (s *AccessoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.accessoryRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.accessoryRepo.Delete(ctx, id)
}

func (s *AccessoryService) writeLog(ctx context.Context, accessory *inventory.Accessory, action inventory.LogAction, quantity, previous decimal.Decimal, notes string, performedBy uuid.UUID) {
	log, err := inventory.NewInventoryLog(
		inventory.ItemTypeAccessory, accessory.ID, accessory.Name,
		action, quantity, previous, accessory.StockQuantity,
	)
	if err != nil {
		return
	}
	if notes != "" {
		log.WithNotes(notes)
	}
	if performedBy != uuid.Nil {
		log.By(performedBy)
	}
	// Logging must not fail the stock operation itself
	_ = s.logRepo.Save(ctx, log)
}
