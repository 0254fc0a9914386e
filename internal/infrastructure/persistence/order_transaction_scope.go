package persistence

import (
	"context"

	"gorm.io/gorm"

	tradeapp "github.com/lanzy-lanzy/tailoring/internal/application/trade"
	"github.com/lanzy-lanzy/tailoring/internal/domain/finance"
	"github.com/lanzy-lanzy/tailoring/internal/domain/inventory"
	"github.com/lanzy-lanzy/tailoring/internal/domain/trade"
	"github.com/lanzy-lanzy/tailoring/internal/domain/workshop"
)

// GormTransactionScope implements the order transaction scope on top of
// GORM transactions. Repository operations issued through the handed
// repositories share one transaction and commit or roll back together.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn inside a database transaction. An error from fn rolls
// the transaction back; nil commits it.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos tradeapp.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories hands out repositories bound to one transaction
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) Orders() trade.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

func (r *gormTransactionalRepositories) Fabrics() inventory.FabricRepository {
	return NewGormFabricRepository(r.tx)
}

func (r *gormTransactionalRepositories) Accessories() inventory.AccessoryRepository {
	return NewGormAccessoryRepository(r.tx)
}

func (r *gormTransactionalRepositories) InventoryLogs() inventory.InventoryLogRepository {
	return NewGormInventoryLogRepository(r.tx)
}

func (r *gormTransactionalRepositories) Tasks() workshop.TaskRepository {
	return NewGormTaskRepository(r.tx)
}

func (r *gormTransactionalRepositories) Payments() finance.PaymentRepository {
	return NewGormPaymentRepository(r.tx)
}

var _ tradeapp.TransactionScope = (*GormTransactionScope)(nil)
var _ tradeapp.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
