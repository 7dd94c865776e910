package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveAvailabilityStatus(t *testing.T) {
	tests := []struct {
		name      string
		available int32
		minimum   int32
		want      AvailabilityStatus
	}{
		{"above threshold", 10, 3, AvailabilityStatusAvailable},
		{"exactly at threshold", 3, 3, AvailabilityStatusLowStock},
		{"below threshold", 1, 3, AvailabilityStatusLowStock},
		{"zero units", 0, 3, AvailabilityStatusNotAvailable},
		{"zero units with zero threshold", 0, 0, AvailabilityStatusNotAvailable},
		{"one unit with zero threshold", 1, 0, AvailabilityStatusAvailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveAvailabilityStatus(tt.available, tt.minimum))
		})
	}
}

func TestInventoryRecordTotalUnits(t *testing.T) {
	rec := InventoryRecord{
		AvailableQuantity:   4,
		BorrowedQuantity:    3,
		DamagedQuantity:     2,
		MaintenanceQuantity: 1,
	}
	assert.Equal(t, int32(10), rec.TotalUnits())
}

func TestTransactionIsOverdue(t *testing.T) {
	now := time.Now()
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)

	assert.True(t, (&Transaction{Status: TransactionStatusActive, ExpectedReturnDate: past}).IsOverdue(now))
	assert.False(t, (&Transaction{Status: TransactionStatusActive, ExpectedReturnDate: future}).IsOverdue(now))
	// Returned and rejected borrows never count as overdue.
	assert.False(t, (&Transaction{Status: TransactionStatusReturned, ExpectedReturnDate: past}).IsOverdue(now))
	assert.False(t, (&Transaction{Status: TransactionStatusRejected, ExpectedReturnDate: past}).IsOverdue(now))
}

func TestReturnConditionRouting(t *testing.T) {
	assert.True(t, ReturnConditionExcellent.ReturnsToAvailable())
	assert.True(t, ReturnConditionGood.ReturnsToAvailable())
	assert.True(t, ReturnConditionFair.ReturnsToAvailable())
	assert.False(t, ReturnConditionDamaged.ReturnsToAvailable())
	assert.False(t, ValidReturnCondition(ReturnCondition("Pristine")))
}

func TestRequiresApproval(t *testing.T) {
	assert.False(t, (&Equipment{SizeCategory: SizeCategorySmall}).RequiresApproval())
	assert.False(t, (&Equipment{SizeCategory: SizeCategoryMedium}).RequiresApproval())
	assert.True(t, (&Equipment{SizeCategory: SizeCategoryLarge}).RequiresApproval())
}

func TestPenaltyStatusTerminal(t *testing.T) {
	assert.True(t, PenaltyStatusPaid.Terminal())
	assert.True(t, PenaltyStatusWaived.Terminal())
	assert.False(t, PenaltyStatusPending.Terminal())
	assert.False(t, PenaltyStatusUnderReview.Terminal())
}
