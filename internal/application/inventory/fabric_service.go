// Package inventory contains application services for fabric and
// accessory stock management. Every stock movement is written to the
// append-only inventory log.
package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanzy-lanzy/tailoring/internal/domain/inventory"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

// FabricService handles fabric stock operations
type FabricService struct {
	fabricRepo inventory.FabricRepository
	logRepo    inventory.InventoryLogRepository
}

// NewFabricService creates a new FabricService
func NewFabricService(fabricRepo inventory.FabricRepository, logRepo inventory.InventoryLogRepository) *FabricService {
	return &FabricService{
		fabricRepo: fabricRepo,
		logRepo:    logRepo,
	}
}

// Create registers a new fabric. Opening stock is logged as an addition.
func (s *FabricService) Create(ctx context.Context, req CreateFabricRequest, performedBy uuid.UUID) (*FabricResponse, error) {
	fabric, err := inventory.NewFabric(req.Name, req.Color, req.StockMeters, req.PricePerMeter)
	if err != nil {
		return nil, err
	}

	if err := s.fabricRepo.Save(ctx, fabric); err != nil {
		return nil, err
	}

	if fabric.StockMeters.GreaterThan(decimal.Zero) {
		s.writeLog(ctx, fabric, inventory.LogActionAdd, fabric.StockMeters, decimal.Zero, "Opening stock", performedBy)
	}

	response := ToFabricResponse(fabric)
	return &response, nil
}

// GetByID retrieves a fabric by ID
func (s *FabricService) GetByID(ctx context.Context, id uuid.UUID) (*FabricResponse, error) {
	fabric, err := s.fabricRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToFabricResponse(fabric)
	return &response, nil
}

// List retrieves fabrics with filtering and pagination
func (s *FabricService) List(ctx context.Context, filter ListFilter) ([]FabricResponse, int64, error) {
	domainFilter := buildListFilter(filter, "name", "asc")

	fabrics, err := s.fabricRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.fabricRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToFabricResponses(fabrics), total, nil
}

// ListLowStock retrieves fabrics below the low-stock threshold
func (s *FabricService) ListLowStock(ctx context.Context) ([]FabricResponse, error) {
	fabrics, err := s.fabricRepo.FindLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return ToFabricResponses(fabrics), nil
}

// Update updates a fabric's descriptive fields and price
func (s *FabricService) Update(ctx context.Context, id uuid.UUID, req UpdateFabricRequest) (*FabricResponse, error) {
	fabric, err := s.fabricRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := fabric.Name
	color := fabric.Color
	price := fabric.PricePerMeter
	if req.Name != nil {
		name = *req.Name
	}
	if req.Color != nil {
		color = *req.Color
	}
	if req.PricePerMeter != nil {
		price = *req.PricePerMeter
	}

	if err := fabric.Update(name, color, price); err != nil {
		return nil, err
	}

	if err := s.fabricRepo.SaveWithLock(ctx, fabric); err != nil {
		return nil, err
	}

	response := ToFabricResponse(fabric)
	return &response, nil
}

// ApplyMovement applies a manual stock movement (add, deduct, or adjust)
// and records it in the inventory log
func (s *FabricService) ApplyMovement(ctx context.Context, id uuid.UUID, req StockMovementRequest, performedBy uuid.UUID) (*FabricResponse, error) {
	fabric, err := s.fabricRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	action := inventory.LogAction(req.Action)
	previous := fabric.StockMeters

	switch action {
	case inventory.LogActionAdd:
		err = fabric.Restore(req.Quantity)
	case inventory.LogActionDeduct:
		err = fabric.Deduct(req.Quantity)
	case inventory.LogActionAdjust:
		err = fabric.Adjust(req.Quantity)
	default:
		return nil, shared.NewDomainError("INVALID_ACTION", "Action must be 'add', 'deduct', or 'adjust'")
	}
	if err != nil {
		return nil, err
	}

	if err := s.fabricRepo.SaveWithLock(ctx, fabric); err != nil {
		return nil, err
	}

	s.writeLog(ctx, fabric, action, req.Quantity, previous, req.Notes, performedBy)

	response := ToFabricResponse(fabric)
	return &response, nil
}

// Delete removes a fabric
func (s *FabricService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.fabricRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.fabricRepo.Delete(ctx, id)
}

func (s *FabricService) writeLog(ctx context.Context, fabric *inventory.Fabric, action inventory.LogAction, quantity, previous decimal.Decimal, notes string, performedBy uuid.UUID) {
	log, err := inventory.NewInventoryLog(
		inventory.ItemTypeFabric, fabric.ID, fabric.Name+" ("+fabric.Color+")",
		action, quantity, previous, fabric.StockMeters,
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

// buildListFilter converts API list parameters into a domain filter
func buildListFilter(filter ListFilter, defaultOrderBy, defaultOrderDir string) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = defaultOrderBy
	}
	if filter.OrderDir == "" {
		filter.OrderDir = defaultOrderDir
	}

	return shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}
}
