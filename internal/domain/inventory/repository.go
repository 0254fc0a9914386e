package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

// FabricRepository defines the persistence contract for fabrics
type FabricRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Fabric, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Fabric, error)
	FindLowStock(ctx context.Context) ([]Fabric, error)
	Save(ctx context.Context, fabric *Fabric) error
	SaveWithLock(ctx context.Context, fabric *Fabric) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// AccessoryRepository defines the persistence contract for accessories
type AccessoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Accessory, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Accessory, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Accessory, error)
	FindLowStock(ctx context.Context) ([]Accessory, error)
	Save(ctx context.Context, accessory *Accessory) error
	SaveWithLock(ctx context.Context, accessory *Accessory) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// InventoryLogRepository defines the persistence contract for stock movement logs
type InventoryLogRepository interface {
	FindAll(ctx context.Context, filter shared.Filter) ([]InventoryLog, error)
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]InventoryLog, error)
	Save(ctx context.Context, log *InventoryLog) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
