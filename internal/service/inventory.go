package service

import (
	"context"
	"fmt"

	"equiptrack-backend/internal/domain"
	"equiptrack-backend/internal/logger"
	"equiptrack-backend/internal/repository"
)

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	equipmentRepo repository.EquipmentRepository
	noteRepo      repository.NotificationRepository
	emailSvc      EmailService
}

func NewInventoryService(
	inventoryRepo repository.InventoryRepository,
	equipmentRepo repository.EquipmentRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) InventoryService {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		equipmentRepo: equipmentRepo,
		noteRepo:      noteRepo,
		emailSvc:      emailSvc,
	}
}

func (s *inventoryService) GetRecord(ctx context.Context, equipmentID int32) (*domain.InventoryRecord, error) {
	return s.inventoryRepo.GetByEquipmentID(ctx, equipmentID)
}

func (s *inventoryService) ListRecords(ctx context.Context) ([]domain.InventoryRecord, error) {
	return s.inventoryRepo.List(ctx)
}

func (s *inventoryService) ListLowStock(ctx context.Context) ([]domain.InventoryRecord, error) {
	records, err := s.inventoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	var low []domain.InventoryRecord
	for _, rec := range records {
		if rec.AvailabilityStatus != domain.AvailabilityStatusAvailable {
			low = append(low, rec)
		}
	}
	return low, nil
}

func (s *inventoryService) Reserve(ctx context.Context, equipmentID, qty int32) error {
	if err := s.inventoryRepo.Reserve(ctx, equipmentID, qty); err != nil {
		return err
	}
	s.checkStockLevel(ctx, equipmentID)
	return nil
}

func (s *inventoryService) Release(ctx context.Context, equipmentID, qty int32) error {
	return s.inventoryRepo.Release(ctx, equipmentID, qty)
}

func (s *inventoryService) MarkDamaged(ctx context.Context, equipmentID, qty int32) error {
	return s.inventoryRepo.MarkDamaged(ctx, equipmentID, qty)
}

func (s *inventoryService) PullForMaintenance(ctx context.Context, equipmentID, qty int32) error {
	if err := s.inventoryRepo.MarkMaintenanceFromAvailable(ctx, equipmentID, qty); err != nil {
		return err
	}
	s.checkStockLevel(ctx, equipmentID)
	return nil
}

func (s *inventoryService) CompleteRepair(ctx context.Context, equipmentID, qty int32, fromDamaged bool) error {
	return s.inventoryRepo.CompleteRepair(ctx, equipmentID, qty, fromDamaged)
}

// checkStockLevel emits a low/out-of-stock event after a counter move that
// shrank the available pool. Best effort: a failed emission never fails the
// triggering operation.
func (s *inventoryService) checkStockLevel(ctx context.Context, equipmentID int32) {
	rec, err := s.inventoryRepo.GetByEquipmentID(ctx, equipmentID)
	if err != nil {
		logger.Warn("Could not re-read inventory record for stock check", "equipment_id", equipmentID, "error", err)
		return
	}
	if rec.AvailabilityStatus == domain.AvailabilityStatusAvailable {
		return
	}

	eq, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		logger.Warn("Could not load equipment for stock alert", "equipment_id", equipmentID, "error", err)
		return
	}

	noteType := domain.NotificationTypeLowStock
	title := "Low stock"
	if rec.AvailabilityStatus == domain.AvailabilityStatusNotAvailable {
		noteType = domain.NotificationTypeOutOfStock
		title = "Out of stock"
	}
	note := &domain.Notification{
		Type:    noteType,
		Title:   title,
		Message: fmt.Sprintf("%s has %d unit(s) available (minimum %d)", eq.Name, rec.AvailableQuantity, rec.MinimumStockLevel),
		Attributes: map[string]string{
			"equipment_id": fmt.Sprintf("%d", equipmentID),
			"available":    fmt.Sprintf("%d", rec.AvailableQuantity),
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Error("Failed to record stock notification", "equipment_id", equipmentID, "error", err)
	}
	if s.emailSvc != nil {
		if err := s.emailSvc.SendLowStockAlert(ctx, eq.Name, rec.AvailableQuantity, rec.MinimumStockLevel); err != nil {
			logger.Warn("Failed to send low stock alert", "equipment_id", equipmentID, "error", err)
		}
	}
}
