package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ItemType identifies which kind of stock item a log entry refers to
type ItemType string

const (
	ItemTypeFabric    ItemType = "fabric"
	ItemTypeAccessory ItemType = "accessory"
)

// LogAction is the kind of stock movement recorded
type LogAction string

const (
	LogActionAdd    LogAction = "add"
	LogActionDeduct LogAction = "deduct"
	LogActionAdjust LogAction = "adjust"
)

// IsValid checks if the action is a valid LogAction
func (a LogAction) IsValid() bool {
	switch a {
	case LogActionAdd, LogActionDeduct, LogActionAdjust:
		return true
	}
	return false
}

// InventoryLog is an append-only audit record of every stock movement
type InventoryLog struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ItemType      ItemType        `gorm:"type:varchar(10);not null;index"`
	ItemID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemName      string          `gorm:"type:varchar(150);not null"`
	Action        LogAction       `gorm:"type:varchar(10);not null"`
	Quantity      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PreviousStock decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	NewStock      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	OrderID       *uuid.UUID      `gorm:"type:uuid;index"`
	Notes         string          `gorm:"type:text"`
	PerformedBy   *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt     time.Time       `gorm:"index"`
}

// TableName returns the table name for GORM
func (InventoryLog) TableName() string {
	return "inventory_logs"
}

// NewInventoryLog creates a new stock movement record
func NewInventoryLog(itemType ItemType, itemID uuid.UUID, itemName string, action LogAction, quantity, previousStock, newStock decimal.Decimal) (*InventoryLog, error) {
	if itemType != ItemTypeFabric && itemType != ItemTypeAccessory {
		return nil, shared.NewDomainError("INVALID_ITEM_TYPE", "Item type must be 'fabric' or 'accessory'")
	}
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item ID cannot be empty")
	}
	if !action.IsValid() {
		return nil, shared.NewDomainError("INVALID_ACTION", "Invalid inventory log action")
	}

	return &InventoryLog{
		ID:            uuid.New(),
		ItemType:      itemType,
		ItemID:        itemID,
		ItemName:      itemName,
		Action:        action,
		Quantity:      quantity,
		PreviousStock: previousStock,
		NewStock:      newStock,
		CreatedAt:     time.Now(),
	}, nil
}

// ForOrder links the log entry to the order that caused the movement
func (l *InventoryLog) ForOrder(orderID uuid.UUID) *InventoryLog {
	l.OrderID = &orderID
	return l
}

// WithNotes attaches free-form notes to the log entry
func (l *InventoryLog) WithNotes(notes string) *InventoryLog {
	l.Notes = notes
	return l
}

// By records the user who performed the movement
func (l *InventoryLog) By(userID uuid.UUID) *InventoryLog {
	l.PerformedBy = &userID
	return l
}
