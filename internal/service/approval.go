package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"equiptrack-backend/internal/domain"
	"equiptrack-backend/internal/logger"
	"equiptrack-backend/internal/repository"
)

type approvalService struct {
	txRepo        repository.TransactionRepository
	equipmentRepo repository.EquipmentRepository
	inventorySvc  InventoryService
	noteRepo      repository.NotificationRepository
	emailSvc      EmailService
}

func NewApprovalService(
	txRepo repository.TransactionRepository,
	equipmentRepo repository.EquipmentRepository,
	inventorySvc InventoryService,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) ApprovalService {
	return &approvalService{
		txRepo:        txRepo,
		equipmentRepo: equipmentRepo,
		inventorySvc:  inventorySvc,
		noteRepo:      noteRepo,
		emailSvc:      emailSvc,
	}
}

func (s *approvalService) Approve(ctx context.Context, transactionID, adminID int32) (*domain.Transaction, error) {
	tx, err := s.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if tx.ApprovalStatus != domain.ApprovalStatusPending {
		return nil, fmt.Errorf("transaction %d approval is %s: %w", tx.ID, tx.ApprovalStatus, domain.ErrAlreadyDecided)
	}

	// Units were already held at creation; approval changes nothing in the
	// ledger, it only makes the hold usable.
	now := time.Now()
	tx.ApprovalStatus = domain.ApprovalStatusApproved
	tx.ApprovedBy = &adminID
	tx.ApprovedOn = &now
	if err := s.txRepo.DecideApproval(ctx, tx); err != nil {
		return nil, fmt.Errorf("approve transaction: %w", err)
	}

	logger.Info("Borrow approved", "transaction_id", tx.ID, "admin_id", adminID)
	return tx, nil
}

func (s *approvalService) Reject(ctx context.Context, transactionID, adminID int32, reason string) (*domain.Transaction, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domain.NewValidationError("reason", "is required")
	}

	tx, err := s.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if tx.ApprovalStatus != domain.ApprovalStatusPending {
		return nil, fmt.Errorf("transaction %d approval is %s: %w", tx.ID, tx.ApprovalStatus, domain.ErrAlreadyDecided)
	}

	// The guarded decision is written first; only the winning rejection
	// releases the hold, so concurrent or retried rejections can never hand
	// the same units back twice.
	now := time.Now()
	tx.ApprovalStatus = domain.ApprovalStatusRejected
	tx.Status = domain.TransactionStatusRejected
	tx.ApprovedBy = &adminID
	tx.ApprovedOn = &now
	tx.RejectionReason = reason
	if err := s.txRepo.DecideApproval(ctx, tx); err != nil {
		return nil, fmt.Errorf("reject transaction: %w", err)
	}

	// The optimistic hold goes back to available as part of the rejection;
	// the transaction leaves Active counts permanently.
	if err := s.inventorySvc.Release(ctx, tx.EquipmentID, tx.Quantity); err != nil {
		// Reinstate the pending decision so a retried rejection releases the
		// hold exactly once.
		tx.ApprovalStatus = domain.ApprovalStatusPending
		tx.Status = domain.TransactionStatusActive
		tx.ApprovedBy = nil
		tx.ApprovedOn = nil
		tx.RejectionReason = ""
		if revErr := s.txRepo.Update(ctx, tx); revErr != nil {
			logger.Error("Failed to reinstate pending approval after release failure",
				"transaction_id", tx.ID, "error", revErr)
		}
		return nil, fmt.Errorf("release rejected hold: %w", err)
	}

	logger.Info("Borrow rejected", "transaction_id", tx.ID, "admin_id", adminID, "reason", reason)
	s.notifyRejection(ctx, tx, reason)
	return tx, nil
}

func (s *approvalService) notifyRejection(ctx context.Context, tx *domain.Transaction, reason string) {
	eq, err := s.equipmentRepo.GetByID(ctx, tx.EquipmentID)
	if err != nil {
		logger.Warn("Could not load equipment for rejection notice", "equipment_id", tx.EquipmentID, "error", err)
		return
	}

	note := &domain.Notification{
		Type:    domain.NotificationTypeBorrowRejected,
		Title:   "Borrow request rejected",
		Message: fmt.Sprintf("Borrow of %s by %s was rejected: %s", eq.Name, tx.BorrowerRFID, reason),
		Attributes: map[string]string{
			"transaction_id": fmt.Sprintf("%d", tx.ID),
			"equipment_id":   fmt.Sprintf("%d", tx.EquipmentID),
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Error("Failed to record rejection notification", "transaction_id", tx.ID, "error", err)
	}
	if s.emailSvc != nil {
		if err := s.emailSvc.SendRejectionNotice(ctx, tx.BorrowerRFID, eq.Name, reason); err != nil {
			logger.Warn("Failed to send rejection notice", "transaction_id", tx.ID, "error", err)
		}
	}
}
