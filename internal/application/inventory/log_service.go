package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/lanzy-lanzy/tailoring/internal/domain/inventory"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

// LogService provides read access to the stock movement audit trail
type LogService struct {
	logRepo inventory.InventoryLogRepository
}

// NewLogService creates a new LogService
func NewLogService(logRepo inventory.InventoryLogRepository) *LogService {
	return &LogService{logRepo: logRepo}
}

// List retrieves inventory logs with filtering and pagination
func (s *LogService) List(ctx context.Context, filter LogListFilter) ([]InventoryLogResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]any),
	}
	if filter.ItemType != "" {
		domainFilter.Filters["item_type"] = filter.ItemType
	}
	if filter.ItemID != "" {
		itemID, err := uuid.Parse(filter.ItemID)
		if err != nil {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "Invalid item ID")
		}
		domainFilter.Filters["item_id"] = itemID
	}
	if filter.Action != "" {
		domainFilter.Filters["action"] = filter.Action
	}

	logs, err := s.logRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.logRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToInventoryLogResponses(logs), total, nil
}

// ListByOrder retrieves the stock movements caused by a single order
func (s *LogService) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]InventoryLogResponse, error) {
	logs, err := s.logRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return ToInventoryLogResponses(logs), nil
}
