package workshop

import (
	"github.com/google/uuid"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

// Event types for the task aggregate
const (
	EventTaskAssigned      = "workshop.task.assigned"
	EventTaskStatusChanged = "workshop.task.status_changed"
	EventTaskApproved      = "workshop.task.approved"
)

// TaskAssignedEvent is emitted when an order is assigned to a tailor
type TaskAssignedEvent struct {
	shared.BaseDomainEvent
	OrderID  uuid.UUID `json:"order_id"`
	TailorID uuid.UUID `json:"tailor_id"`
}

// NewTaskAssignedEvent creates a new TaskAssignedEvent
func NewTaskAssignedEvent(t *Task) *TaskAssignedEvent {
	return &TaskAssignedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTaskAssigned, "Task", t.ID),
		OrderID:         t.OrderID,
		TailorID:        t.TailorID,
	}
}

// TaskStatusChangedEvent is emitted on task start and completion
type TaskStatusChangedEvent struct {
	shared.BaseDomainEvent
	OrderID   uuid.UUID  `json:"order_id"`
	TailorID  uuid.UUID  `json:"tailor_id"`
	OldStatus TaskStatus `json:"old_status"`
	NewStatus TaskStatus `json:"new_status"`
}

// NewTaskStatusChangedEvent creates a new TaskStatusChangedEvent
func NewTaskStatusChangedEvent(t *Task, oldStatus, newStatus TaskStatus) *TaskStatusChangedEvent {
	return &TaskStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTaskStatusChanged, "Task", t.ID),
		OrderID:         t.OrderID,
		TailorID:        t.TailorID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// TaskApprovedEvent is emitted when completed work is approved
type TaskApprovedEvent struct {
	shared.BaseDomainEvent
	OrderID    uuid.UUID  `json:"order_id"`
	TailorID   uuid.UUID  `json:"tailor_id"`
	ApprovedBy *uuid.UUID `json:"approved_by"`
}

// NewTaskApprovedEvent creates a new TaskApprovedEvent
func NewTaskApprovedEvent(t *Task) *TaskApprovedEvent {
	return &TaskApprovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTaskApproved, "Task", t.ID),
		OrderID:         t.OrderID,
		TailorID:        t.TailorID,
		ApprovedBy:      t.ApprovedBy,
	}
}
