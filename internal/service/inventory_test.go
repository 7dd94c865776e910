package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"equiptrack-backend/internal/domain"
)

func TestReserve_EmitsLowStockAlertWhenThresholdCrossed(t *testing.T) {
	invRepo := new(MockInventoryRepo)
	eqRepo := new(MockEquipmentRepo)
	noteRepo := new(MockNotificationRepo)
	emailSvc := new(MockEmailService)
	svc := NewInventoryService(invRepo, eqRepo, noteRepo, emailSvc)

	invRepo.On("Reserve", mock.Anything, int32(7), int32(3)).Return(nil)
	rec := &domain.InventoryRecord{
		EquipmentID:       7,
		AvailableQuantity: 2,
		BorrowedQuantity:  8,
		MinimumStockLevel: 3,
	}
	rec.Recompute()
	invRepo.On("GetByEquipmentID", mock.Anything, int32(7)).Return(rec, nil)
	eqRepo.On("GetByID", mock.Anything, int32(7)).Return(smallDrill(), nil)
	noteRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Type == domain.NotificationTypeLowStock
	})).Return(nil)
	emailSvc.On("SendLowStockAlert", mock.Anything, "Cordless Drill", int32(2), int32(3)).Return(nil)

	require.NoError(t, svc.Reserve(context.Background(), 7, 3))
	noteRepo.AssertExpectations(t)
	emailSvc.AssertExpectations(t)
}

func TestReserve_LastUnitEmitsOutOfStock(t *testing.T) {
	invRepo := new(MockInventoryRepo)
	eqRepo := new(MockEquipmentRepo)
	noteRepo := new(MockNotificationRepo)
	svc := NewInventoryService(invRepo, eqRepo, noteRepo, nil)

	invRepo.On("Reserve", mock.Anything, int32(7), int32(1)).Return(nil)
	rec := &domain.InventoryRecord{EquipmentID: 7, AvailableQuantity: 0, BorrowedQuantity: 10}
	rec.Recompute()
	invRepo.On("GetByEquipmentID", mock.Anything, int32(7)).Return(rec, nil)
	eqRepo.On("GetByID", mock.Anything, int32(7)).Return(smallDrill(), nil)
	noteRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Type == domain.NotificationTypeOutOfStock
	})).Return(nil)

	require.NoError(t, svc.Reserve(context.Background(), 7, 1))
	noteRepo.AssertExpectations(t)
}

func TestReserve_HealthyStockStaysQuiet(t *testing.T) {
	invRepo := new(MockInventoryRepo)
	noteRepo := new(MockNotificationRepo)
	svc := NewInventoryService(invRepo, new(MockEquipmentRepo), noteRepo, nil)

	invRepo.On("Reserve", mock.Anything, int32(7), int32(1)).Return(nil)
	rec := &domain.InventoryRecord{EquipmentID: 7, AvailableQuantity: 9, MinimumStockLevel: 2}
	rec.Recompute()
	invRepo.On("GetByEquipmentID", mock.Anything, int32(7)).Return(rec, nil)

	require.NoError(t, svc.Reserve(context.Background(), 7, 1))
	noteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReserve_InsufficientStockPassesThrough(t *testing.T) {
	invRepo := new(MockInventoryRepo)
	svc := NewInventoryService(invRepo, new(MockEquipmentRepo), new(MockNotificationRepo), nil)

	invRepo.On("Reserve", mock.Anything, int32(7), int32(99)).Return(domain.ErrInsufficientStock)

	err := svc.Reserve(context.Background(), 7, 99)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestListLowStock_FiltersByDerivedStatus(t *testing.T) {
	invRepo := new(MockInventoryRepo)
	svc := NewInventoryService(invRepo, new(MockEquipmentRepo), new(MockNotificationRepo), nil)

	records := []domain.InventoryRecord{
		{EquipmentID: 1, AvailableQuantity: 9, MinimumStockLevel: 2},
		{EquipmentID: 2, AvailableQuantity: 1, MinimumStockLevel: 2},
		{EquipmentID: 3, AvailableQuantity: 0, MinimumStockLevel: 0},
	}
	for i := range records {
		records[i].Recompute()
	}
	invRepo.On("List", mock.Anything).Return(records, nil)

	low, err := svc.ListLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, int32(2), low[0].EquipmentID)
	assert.Equal(t, int32(3), low[1].EquipmentID)
}

func TestCompleteRepair_MovesUnitsFromChosenPool(t *testing.T) {
	invRepo := new(MockInventoryRepo)
	svc := NewInventoryService(invRepo, new(MockEquipmentRepo), new(MockNotificationRepo), nil)

	invRepo.On("CompleteRepair", mock.Anything, int32(7), int32(2), true).Return(nil)
	require.NoError(t, svc.CompleteRepair(context.Background(), 7, 2, true))
	invRepo.AssertExpectations(t)
}
