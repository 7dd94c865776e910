package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"equiptrack-backend/internal/domain"
)

// MockEquipmentRepo
type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) Create(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}
func (m *MockEquipmentRepo) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) GetByRFID(ctx context.Context, rfidTag string) (*domain.Equipment, error) {
	args := m.Called(ctx, rfidTag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) Update(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}
func (m *MockEquipmentRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Equipment, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Equipment), args.Get(1).(int32), args.Error(2)
}

// MockInventoryRepo
type MockInventoryRepo struct {
	mock.Mock
}

func (m *MockInventoryRepo) CreateForEquipment(ctx context.Context, equipmentID, quantity, minimumStock int32) error {
	args := m.Called(ctx, equipmentID, quantity, minimumStock)
	return args.Error(0)
}
func (m *MockInventoryRepo) GetByEquipmentID(ctx context.Context, equipmentID int32) (*domain.InventoryRecord, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryRecord), args.Error(1)
}
func (m *MockInventoryRepo) List(ctx context.Context) ([]domain.InventoryRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryRecord), args.Error(1)
}
func (m *MockInventoryRepo) Reserve(ctx context.Context, equipmentID, qty int32) error {
	args := m.Called(ctx, equipmentID, qty)
	return args.Error(0)
}
func (m *MockInventoryRepo) Release(ctx context.Context, equipmentID, qty int32) error {
	args := m.Called(ctx, equipmentID, qty)
	return args.Error(0)
}
func (m *MockInventoryRepo) MarkDamaged(ctx context.Context, equipmentID, qty int32) error {
	args := m.Called(ctx, equipmentID, qty)
	return args.Error(0)
}
func (m *MockInventoryRepo) MarkMaintenanceFromAvailable(ctx context.Context, equipmentID, qty int32) error {
	args := m.Called(ctx, equipmentID, qty)
	return args.Error(0)
}
func (m *MockInventoryRepo) CompleteRepair(ctx context.Context, equipmentID, qty int32, fromDamaged bool) error {
	args := m.Called(ctx, equipmentID, qty, fromDamaged)
	return args.Error(0)
}
func (m *MockInventoryRepo) AdjustTotal(ctx context.Context, equipmentID, delta int32) error {
	args := m.Called(ctx, equipmentID, delta)
	return args.Error(0)
}

// MockTransactionRepo
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepo) GetByID(ctx context.Context, id int32) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) Update(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepo) MarkReturned(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepo) DecideApproval(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Transaction, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Get(1).(int32), args.Error(2)
}
func (m *MockTransactionRepo) ListByBorrower(ctx context.Context, borrowerRFID string, status string, page, pageSize int32) ([]domain.Transaction, int32, error) {
	args := m.Called(ctx, borrowerRFID, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Get(1).(int32), args.Error(2)
}
func (m *MockTransactionRepo) ListActiveOverdue(ctx context.Context, cutoff time.Time, missingPenaltyType domain.PenaltyType) ([]domain.Transaction, error) {
	args := m.Called(ctx, cutoff, missingPenaltyType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// MockPenaltyRepo
type MockPenaltyRepo struct {
	mock.Mock
}

func (m *MockPenaltyRepo) Create(ctx context.Context, p *domain.Penalty) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}
func (m *MockPenaltyRepo) GetByID(ctx context.Context, id int32) (*domain.Penalty, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Penalty), args.Error(1)
}
func (m *MockPenaltyRepo) UpdateStatus(ctx context.Context, p *domain.Penalty) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPenaltyRepo) List(ctx context.Context, status string, penaltyType string, page, pageSize int32) ([]domain.Penalty, int32, error) {
	args := m.Called(ctx, status, penaltyType, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.Penalty), args.Get(1).(int32), args.Error(2)
}
func (m *MockPenaltyRepo) GetStatistics(ctx context.Context) (*domain.PenaltyStatistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PenaltyStatistics), args.Error(1)
}

// MockGuidelineRepo
type MockGuidelineRepo struct {
	mock.Mock
}

func (m *MockGuidelineRepo) Create(ctx context.Context, g *domain.PenaltyGuideline) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}
func (m *MockGuidelineRepo) GetByID(ctx context.Context, id int32) (*domain.PenaltyGuideline, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PenaltyGuideline), args.Error(1)
}
func (m *MockGuidelineRepo) GetActiveByType(ctx context.Context, t domain.PenaltyType) (*domain.PenaltyGuideline, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PenaltyGuideline), args.Error(1)
}
func (m *MockGuidelineRepo) Update(ctx context.Context, g *domain.PenaltyGuideline) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}
func (m *MockGuidelineRepo) List(ctx context.Context, status string) ([]domain.PenaltyGuideline, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PenaltyGuideline), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockInventoryService
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) GetRecord(ctx context.Context, equipmentID int32) (*domain.InventoryRecord, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryRecord), args.Error(1)
}
func (m *MockInventoryService) ListRecords(ctx context.Context) ([]domain.InventoryRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryRecord), args.Error(1)
}
func (m *MockInventoryService) ListLowStock(ctx context.Context) ([]domain.InventoryRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryRecord), args.Error(1)
}
func (m *MockInventoryService) Reserve(ctx context.Context, equipmentID, qty int32) error {
	args := m.Called(ctx, equipmentID, qty)
	return args.Error(0)
}
func (m *MockInventoryService) Release(ctx context.Context, equipmentID, qty int32) error {
	args := m.Called(ctx, equipmentID, qty)
	return args.Error(0)
}
func (m *MockInventoryService) MarkDamaged(ctx context.Context, equipmentID, qty int32) error {
	args := m.Called(ctx, equipmentID, qty)
	return args.Error(0)
}
func (m *MockInventoryService) PullForMaintenance(ctx context.Context, equipmentID, qty int32) error {
	args := m.Called(ctx, equipmentID, qty)
	return args.Error(0)
}
func (m *MockInventoryService) CompleteRepair(ctx context.Context, equipmentID, qty int32, fromDamaged bool) error {
	args := m.Called(ctx, equipmentID, qty, fromDamaged)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendPenaltyNotice(ctx context.Context, borrowerRFID, equipmentName string, amountCents int64, daysOverdue int32) error {
	args := m.Called(ctx, borrowerRFID, equipmentName, amountCents, daysOverdue)
	return args.Error(0)
}
func (m *MockEmailService) SendRejectionNotice(ctx context.Context, borrowerRFID, equipmentName, reason string) error {
	args := m.Called(ctx, borrowerRFID, equipmentName, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendLowStockAlert(ctx context.Context, equipmentName string, available, minimum int32) error {
	args := m.Called(ctx, equipmentName, available, minimum)
	return args.Error(0)
}
func (m *MockEmailService) SendOverdueReminder(ctx context.Context, borrowerRFID, equipmentName string, daysOverdue int32) error {
	args := m.Called(ctx, borrowerRFID, equipmentName, daysOverdue)
	return args.Error(0)
}
