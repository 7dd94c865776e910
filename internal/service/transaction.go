package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"equiptrack-backend/internal/domain"
	"equiptrack-backend/internal/logger"
	"equiptrack-backend/internal/repository"

	"github.com/google/uuid"
)

type transactionService struct {
	txRepo        repository.TransactionRepository
	equipmentRepo repository.EquipmentRepository
	inventorySvc  InventoryService
}

func NewTransactionService(
	txRepo repository.TransactionRepository,
	equipmentRepo repository.EquipmentRepository,
	inventorySvc InventoryService,
) TransactionService {
	return &transactionService{
		txRepo:        txRepo,
		equipmentRepo: equipmentRepo,
		inventorySvc:  inventorySvc,
	}
}

func (s *transactionService) CreateBorrow(ctx context.Context, equipmentRFID, borrowerRFID string, qty int32, expectedReturnDate *time.Time) (*domain.Transaction, error) {
	if strings.TrimSpace(borrowerRFID) == "" {
		return nil, domain.NewValidationError("borrower_rfid", "is required")
	}
	if qty <= 0 {
		return nil, domain.NewValidationError("quantity", "must be positive")
	}

	eq, err := s.equipmentRepo.GetByRFID(ctx, equipmentRFID)
	if err != nil {
		return nil, fmt.Errorf("resolve equipment %q: %w", equipmentRFID, err)
	}

	dueDate := time.Now().AddDate(0, 0, int(eq.BorrowPeriodDays))
	if expectedReturnDate != nil {
		dueDate = *expectedReturnDate
	}

	// Optimistic hold: units are reserved up front even when admin approval
	// is still pending. Rejection hands them back.
	if err := s.inventorySvc.Reserve(ctx, eq.ID, qty); err != nil {
		return nil, err
	}

	approval := domain.ApprovalStatusApproved
	if eq.RequiresApproval() {
		approval = domain.ApprovalStatusPending
	}

	tx := &domain.Transaction{
		ReferenceNumber:    uuid.NewString(),
		EquipmentID:        eq.ID,
		BorrowerRFID:       borrowerRFID,
		Type:               domain.TransactionTypeBorrow,
		Quantity:           qty,
		Status:             domain.TransactionStatusActive,
		ApprovalStatus:     approval,
		ExpectedReturnDate: dueDate,
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		// Hand the reservation back so the counters stay consistent with the
		// transaction history.
		if relErr := s.inventorySvc.Release(ctx, eq.ID, qty); relErr != nil {
			logger.Error("Failed to release hold after borrow insert failure",
				"equipment_id", eq.ID, "quantity", qty, "error", relErr)
		}
		return nil, fmt.Errorf("create borrow transaction: %w", err)
	}

	logger.Info("Borrow created",
		"transaction_id", tx.ID, "equipment_id", eq.ID, "borrower", borrowerRFID,
		"quantity", qty, "approval_status", approval)
	return tx, nil
}

func (s *transactionService) RecordReturn(ctx context.Context, transactionID int32, condition domain.ReturnCondition) (*domain.Transaction, error) {
	if !domain.ValidReturnCondition(condition) {
		return nil, domain.NewValidationError("condition_after", "unknown condition")
	}

	tx, err := s.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if tx.Status != domain.TransactionStatusActive {
		return nil, fmt.Errorf("transaction %d is %s: %w", tx.ID, tx.Status, domain.ErrInvalidTransition)
	}
	if tx.Type != domain.TransactionTypeBorrow {
		return nil, fmt.Errorf("transaction %d is not a borrow: %w", tx.ID, domain.ErrInvalidTransition)
	}

	// The guarded row transition comes before any counter move: if it fails,
	// nothing has changed yet and the caller can simply retry. The inverse
	// order would strand the released units on a failed update and a retry
	// would release them again.
	now := time.Now()
	tx.Status = domain.TransactionStatusReturned
	tx.ReturnedOn = &now
	tx.ConditionAfter = condition
	if err := s.txRepo.MarkReturned(ctx, tx); err != nil {
		return nil, fmt.Errorf("record return: %w", err)
	}

	if condition.ReturnsToAvailable() {
		err = s.inventorySvc.Release(ctx, tx.EquipmentID, tx.Quantity)
	} else {
		err = s.inventorySvc.MarkDamaged(ctx, tx.EquipmentID, tx.Quantity)
	}
	if err != nil {
		// Put the row back so counters and history stay in step and the
		// return stays retryable.
		tx.Status = domain.TransactionStatusActive
		tx.ReturnedOn = nil
		tx.ConditionAfter = ""
		if revErr := s.txRepo.Update(ctx, tx); revErr != nil {
			logger.Error("Failed to revert return after counter move failure",
				"transaction_id", tx.ID, "error", revErr)
		}
		return nil, err
	}

	logger.Info("Return recorded",
		"transaction_id", tx.ID, "equipment_id", tx.EquipmentID, "condition", condition)
	return tx, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, id int32) (*domain.Transaction, error) {
	return s.txRepo.GetByID(ctx, id)
}

func (s *transactionService) ListTransactions(ctx context.Context, status string, page, pageSize int32) ([]domain.Transaction, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.txRepo.List(ctx, status, page, pageSize)
}

func (s *transactionService) ListByBorrower(ctx context.Context, borrowerRFID, status string, page, pageSize int32) ([]domain.Transaction, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.txRepo.ListByBorrower(ctx, borrowerRFID, status, page, pageSize)
}

func (s *transactionService) ListOverdue(ctx context.Context) ([]domain.Transaction, error) {
	// The overdue predicate is sampled, never stored: anything Active past
	// its expected return date, regardless of penalty state. Pages through
	// the full Active set so nothing past the first page is dropped.
	const pageSize = 500
	now := time.Now()
	var overdue []domain.Transaction
	for page := int32(1); ; page++ {
		txs, _, err := s.txRepo.List(ctx, string(domain.TransactionStatusActive), page, pageSize)
		if err != nil {
			return nil, err
		}
		for _, tx := range txs {
			if tx.IsOverdue(now) {
				overdue = append(overdue, tx)
			}
		}
		if int32(len(txs)) < pageSize {
			return overdue, nil
		}
	}
}
