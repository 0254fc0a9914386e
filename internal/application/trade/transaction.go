package trade

import (
	"context"

	"github.com/lanzy-lanzy/tailoring/internal/domain/finance"
	"github.com/lanzy-lanzy/tailoring/internal/domain/inventory"
	"github.com/lanzy-lanzy/tailoring/internal/domain/trade"
	"github.com/lanzy-lanzy/tailoring/internal/domain/workshop"
)

// TransactionalRepositories exposes the repositories that take part in an
// order write, all bound to the same database transaction.
type TransactionalRepositories interface {
	Orders() trade.OrderRepository
	Fabrics() inventory.FabricRepository
	Accessories() inventory.AccessoryRepository
	InventoryLogs() inventory.InventoryLogRepository
	Tasks() workshop.TaskRepository
	Payments() finance.PaymentRepository
}

// TransactionScope runs a unit of work atomically. When fn returns an
// error every write issued through the handed repositories is rolled
// back; stock deductions, the order row, the task, and the deposit
// payment commit together or not at all.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}
