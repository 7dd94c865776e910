package service

import (
	"context"
	"fmt"
	"strings"

	"equiptrack-backend/internal/domain"
	"equiptrack-backend/internal/logger"
	"equiptrack-backend/internal/repository"
)

type catalogService struct {
	equipmentRepo repository.EquipmentRepository
	inventoryRepo repository.InventoryRepository
	noteRepo      repository.NotificationRepository
}

func NewCatalogService(
	equipmentRepo repository.EquipmentRepository,
	inventoryRepo repository.InventoryRepository,
	noteRepo repository.NotificationRepository,
) CatalogService {
	return &catalogService{
		equipmentRepo: equipmentRepo,
		inventoryRepo: inventoryRepo,
		noteRepo:      noteRepo,
	}
}

func (s *catalogService) CreateEquipment(ctx context.Context, eq *domain.Equipment, minimumStock int32) (*domain.Equipment, error) {
	if strings.TrimSpace(eq.RFIDTag) == "" {
		return nil, domain.NewValidationError("rfid_tag", "is required")
	}
	if strings.TrimSpace(eq.Name) == "" {
		return nil, domain.NewValidationError("name", "is required")
	}
	if eq.Quantity < 0 {
		return nil, domain.NewValidationError("quantity", "must not be negative")
	}
	if !domain.ValidSizeCategory(eq.SizeCategory) {
		return nil, domain.NewValidationError("size_category", "must be Small, Medium or Large")
	}
	if eq.BorrowPeriodDays <= 0 {
		eq.BorrowPeriodDays = 7
	}
	if minimumStock < 0 {
		minimumStock = 0
	}

	if existing, err := s.equipmentRepo.GetByRFID(ctx, eq.RFIDTag); err == nil && existing != nil {
		return nil, domain.NewValidationError("rfid_tag", "already registered")
	}

	if err := s.equipmentRepo.Create(ctx, eq); err != nil {
		return nil, fmt.Errorf("create equipment: %w", err)
	}

	// The equipment row is committed at this point. A failed inventory
	// record insert leaves the system degraded but recoverable, so it is
	// recorded and surfaced, never allowed to fail the creation.
	if err := s.inventoryRepo.CreateForEquipment(ctx, eq.ID, eq.Quantity, minimumStock); err != nil {
		depErr := &domain.DependencyError{Dependency: "inventory record", Err: err}
		logger.Error("Inventory record creation failed after equipment insert",
			"equipment_id", eq.ID, "rfid_tag", eq.RFIDTag, "error", err)
		note := &domain.Notification{
			Type:    domain.NotificationTypeDependencyFailure,
			Title:   "Inventory record missing",
			Message: fmt.Sprintf("Equipment %q was created but its inventory record could not be initialized", eq.Name),
			Attributes: map[string]string{
				"equipment_id": fmt.Sprintf("%d", eq.ID),
				"error":        err.Error(),
			},
		}
		if noteErr := s.noteRepo.Create(ctx, note); noteErr != nil {
			logger.Error("Failed to record dependency failure notification", "error", noteErr)
		}
		return eq, depErr
	}

	return eq, nil
}

func (s *catalogService) UpdateEquipment(ctx context.Context, eq *domain.Equipment) (*domain.Equipment, error) {
	current, err := s.equipmentRepo.GetByID(ctx, eq.ID)
	if err != nil {
		return nil, err
	}
	if eq.Quantity < 0 {
		return nil, domain.NewValidationError("quantity", "must not be negative")
	}
	if !domain.ValidSizeCategory(eq.SizeCategory) {
		return nil, domain.NewValidationError("size_category", "must be Small, Medium or Large")
	}

	// A quantity change is a stock adjustment: the delta flows through the
	// available counter under the same underflow guard as any counter move,
	// which keeps the four-counter sum equal to the new total.
	delta := eq.Quantity - current.Quantity
	if delta != 0 {
		if err := s.inventoryRepo.AdjustTotal(ctx, eq.ID, delta); err != nil {
			return nil, fmt.Errorf("adjust stock by %d: %w", delta, err)
		}
	}

	eq.RFIDTag = current.RFIDTag // immutable once assigned
	if err := s.equipmentRepo.Update(ctx, eq); err != nil {
		return nil, fmt.Errorf("update equipment: %w", err)
	}
	return eq, nil
}

func (s *catalogService) GetEquipment(ctx context.Context, id int32) (*domain.Equipment, error) {
	return s.equipmentRepo.GetByID(ctx, id)
}

func (s *catalogService) GetEquipmentByRFID(ctx context.Context, rfidTag string) (*domain.Equipment, error) {
	if strings.TrimSpace(rfidTag) == "" {
		return nil, domain.NewValidationError("rfid_tag", "is required")
	}
	return s.equipmentRepo.GetByRFID(ctx, rfidTag)
}

func (s *catalogService) ListEquipment(ctx context.Context, page, pageSize int32) ([]domain.Equipment, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.equipmentRepo.List(ctx, page, pageSize)
}
