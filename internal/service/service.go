package service

import (
	"context"
	"time"

	"equiptrack-backend/internal/domain"
)

type CatalogService interface {
	CreateEquipment(ctx context.Context, eq *domain.Equipment, minimumStock int32) (*domain.Equipment, error)
	UpdateEquipment(ctx context.Context, eq *domain.Equipment) (*domain.Equipment, error)
	GetEquipment(ctx context.Context, id int32) (*domain.Equipment, error)
	GetEquipmentByRFID(ctx context.Context, rfidTag string) (*domain.Equipment, error)
	ListEquipment(ctx context.Context, page, pageSize int32) ([]domain.Equipment, int32, error)
}

type InventoryService interface {
	GetRecord(ctx context.Context, equipmentID int32) (*domain.InventoryRecord, error)
	ListRecords(ctx context.Context) ([]domain.InventoryRecord, error)
	ListLowStock(ctx context.Context) ([]domain.InventoryRecord, error)
	Reserve(ctx context.Context, equipmentID, qty int32) error
	Release(ctx context.Context, equipmentID, qty int32) error
	MarkDamaged(ctx context.Context, equipmentID, qty int32) error
	// PullForMaintenance takes idle units out of circulation.
	PullForMaintenance(ctx context.Context, equipmentID, qty int32) error
	// CompleteRepair returns damaged or maintained units to circulation.
	CompleteRepair(ctx context.Context, equipmentID, qty int32, fromDamaged bool) error
}

type TransactionService interface {
	CreateBorrow(ctx context.Context, equipmentRFID, borrowerRFID string, qty int32, expectedReturnDate *time.Time) (*domain.Transaction, error)
	RecordReturn(ctx context.Context, transactionID int32, condition domain.ReturnCondition) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, id int32) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, status string, page, pageSize int32) ([]domain.Transaction, int32, error)
	ListByBorrower(ctx context.Context, borrowerRFID, status string, page, pageSize int32) ([]domain.Transaction, int32, error)
	ListOverdue(ctx context.Context) ([]domain.Transaction, error)
}

type ApprovalService interface {
	Approve(ctx context.Context, transactionID, adminID int32) (*domain.Transaction, error)
	Reject(ctx context.Context, transactionID, adminID int32, reason string) (*domain.Transaction, error)
}

type PenaltyService interface {
	AutoCalculateOverdue(ctx context.Context) (int32, error)
	CreatePenalty(ctx context.Context, req *CreatePenaltyRequest) (*domain.Penalty, error)
	UpdateStatus(ctx context.Context, penaltyID int32, status domain.PenaltyStatus, paymentMethod, notes string) (*domain.Penalty, error)
	GetPenalty(ctx context.Context, id int32) (*domain.Penalty, error)
	ListPenalties(ctx context.Context, status, penaltyType string, page, pageSize int32) ([]domain.Penalty, int32, error)
	GetStatistics(ctx context.Context) (*domain.PenaltyStatistics, error)

	// Guideline management
	CreateGuideline(ctx context.Context, g *domain.PenaltyGuideline) (*domain.PenaltyGuideline, error)
	UpdateGuideline(ctx context.Context, g *domain.PenaltyGuideline) (*domain.PenaltyGuideline, error)
	ArchiveGuideline(ctx context.Context, id int32) error
	ListGuidelines(ctx context.Context, status string) ([]domain.PenaltyGuideline, error)
}

// CreatePenaltyRequest is the manual creation path used for Damage/Loss and
// ad-hoc penalties.
type CreatePenaltyRequest struct {
	TransactionID int32
	GuidelineID   *int32
	Type          domain.PenaltyType
	AmountCents   int64
	Points        int32
	DaysOverdue   int32
	Description   string
	Notes         string
}

type NotificationService interface {
	Record(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id int32) error
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type EmailService interface {
	SendPenaltyNotice(ctx context.Context, borrowerRFID, equipmentName string, amountCents int64, daysOverdue int32) error
	SendRejectionNotice(ctx context.Context, borrowerRFID, equipmentName, reason string) error
	SendLowStockAlert(ctx context.Context, equipmentName string, available, minimum int32) error
	SendOverdueReminder(ctx context.Context, borrowerRFID, equipmentName string, daysOverdue int32) error
}
