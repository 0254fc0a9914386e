package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

// GarmentTypeRepository defines the persistence contract for garment types
type GarmentTypeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GarmentType, error)
	FindByName(ctx context.Context, name string) (*GarmentType, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]GarmentType, error)
	FindActive(ctx context.Context) ([]GarmentType, error)
	Save(ctx context.Context, garmentType *GarmentType) error
	SaveWithLock(ctx context.Context, garmentType *GarmentType) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
