package repository

import (
	"context"
	"time"

	"equiptrack-backend/internal/domain"
)

type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	GetByID(ctx context.Context, id int32) (*domain.Equipment, error)
	GetByRFID(ctx context.Context, rfidTag string) (*domain.Equipment, error)
	Update(ctx context.Context, eq *domain.Equipment) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Equipment, int32, error)
}

// InventoryRepository performs every counter move as a single conditional
// read-modify-write so concurrent kiosks can never race a check-then-act.
type InventoryRepository interface {
	// CreateForEquipment upserts the record for newly created equipment with
	// available = quantity. Safe against duplicate calls.
	CreateForEquipment(ctx context.Context, equipmentID, quantity, minimumStock int32) error
	GetByEquipmentID(ctx context.Context, equipmentID int32) (*domain.InventoryRecord, error)
	List(ctx context.Context) ([]domain.InventoryRecord, error)

	// Reserve moves qty from available to borrowed. Returns
	// domain.ErrInsufficientStock when available < qty.
	Reserve(ctx context.Context, equipmentID, qty int32) error
	// Release moves qty from borrowed back to available. Returns
	// domain.ErrCounterUnderflow when borrowed < qty.
	Release(ctx context.Context, equipmentID, qty int32) error
	// MarkDamaged moves qty from borrowed to damaged.
	MarkDamaged(ctx context.Context, equipmentID, qty int32) error
	// MarkMaintenanceFromAvailable pulls qty of idle units into maintenance.
	MarkMaintenanceFromAvailable(ctx context.Context, equipmentID, qty int32) error
	// CompleteRepair moves qty from damaged or maintenance back to available.
	CompleteRepair(ctx context.Context, equipmentID, qty int32, fromDamaged bool) error
	// AdjustTotal applies a stock delta to the available counter (negative
	// deltas are guarded like any other counter move).
	AdjustTotal(ctx context.Context, equipmentID, delta int32) error
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	GetByID(ctx context.Context, id int32) (*domain.Transaction, error)
	Update(ctx context.Context, tx *domain.Transaction) error
	// MarkReturned applies the return transition only while the row is still
	// Active. Zero rows affected reports domain.ErrInvalidTransition, so the
	// same return can never be applied twice.
	MarkReturned(ctx context.Context, tx *domain.Transaction) error
	// DecideApproval records an approval decision only while the row is
	// still Pending. Zero rows affected reports domain.ErrAlreadyDecided:
	// the first decision wins.
	DecideApproval(ctx context.Context, tx *domain.Transaction) error
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Transaction, int32, error)
	ListByBorrower(ctx context.Context, borrowerRFID string, status string, page, pageSize int32) ([]domain.Transaction, int32, error)
	// ListActiveOverdue returns Active borrows whose expected return date is
	// before cutoff and which have no penalty of the given type yet.
	ListActiveOverdue(ctx context.Context, cutoff time.Time, missingPenaltyType domain.PenaltyType) ([]domain.Transaction, error)
}

type PenaltyRepository interface {
	// Create inserts the penalty unless one already exists for the same
	// (transaction, type) pair. Returns (false, nil) on conflict.
	Create(ctx context.Context, p *domain.Penalty) (bool, error)
	GetByID(ctx context.Context, id int32) (*domain.Penalty, error)
	UpdateStatus(ctx context.Context, p *domain.Penalty) error
	List(ctx context.Context, status string, penaltyType string, page, pageSize int32) ([]domain.Penalty, int32, error)
	GetStatistics(ctx context.Context) (*domain.PenaltyStatistics, error)
}

type GuidelineRepository interface {
	Create(ctx context.Context, g *domain.PenaltyGuideline) error
	GetByID(ctx context.Context, id int32) (*domain.PenaltyGuideline, error)
	// GetActiveByType returns the active guideline for a penalty type, or
	// domain.ErrNotFound when none is active.
	GetActiveByType(ctx context.Context, t domain.PenaltyType) (*domain.PenaltyGuideline, error)
	Update(ctx context.Context, g *domain.PenaltyGuideline) error
	List(ctx context.Context, status string) ([]domain.PenaltyGuideline, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id int32) error
}
