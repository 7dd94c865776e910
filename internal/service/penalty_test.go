package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"equiptrack-backend/internal/config"
	"equiptrack-backend/internal/domain"
)

func penaltyDefaults() config.PenaltyConfig {
	return config.PenaltyConfig{
		DailyRateCents:   1000,
		GracePeriodDays:  0,
		MaxPenaltyCents:  500000,
		LateReturnPoints: 1,
	}
}

func overdueBorrow(id int32, daysLate int) domain.Transaction {
	return domain.Transaction{
		ID:                 id,
		EquipmentID:        7,
		BorrowerRFID:       "USER-42",
		Type:               domain.TransactionTypeBorrow,
		Quantity:           1,
		Status:             domain.TransactionStatusActive,
		ExpectedReturnDate: time.Now().AddDate(0, 0, -daysLate),
	}
}

func newPenaltyFixture() (*MockPenaltyRepo, *MockGuidelineRepo, *MockTransactionRepo, *MockEquipmentRepo, *MockNotificationRepo, PenaltyService) {
	penaltyRepo := new(MockPenaltyRepo)
	guidelineRepo := new(MockGuidelineRepo)
	txRepo := new(MockTransactionRepo)
	eqRepo := new(MockEquipmentRepo)
	noteRepo := new(MockNotificationRepo)
	svc := NewPenaltyService(penaltyRepo, guidelineRepo, txRepo, eqRepo, noteRepo, nil, penaltyDefaults())
	return penaltyRepo, guidelineRepo, txRepo, eqRepo, noteRepo, svc
}

func TestAutoCalculateOverdue_ChargesPerDayFromDefaults(t *testing.T) {
	penaltyRepo, guidelineRepo, txRepo, eqRepo, noteRepo, svc := newPenaltyFixture()

	txRepo.On("ListActiveOverdue", mock.Anything, mock.AnythingOfType("time.Time"), domain.PenaltyTypeLateReturn).
		Return([]domain.Transaction{overdueBorrow(30, 3)}, nil)
	guidelineRepo.On("GetActiveByType", mock.Anything, domain.PenaltyTypeLateReturn).Return(nil, domain.ErrNotFound)
	eqRepo.On("GetByID", mock.Anything, int32(7)).Return(smallDrill(), nil)
	penaltyRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Penalty) bool {
		// Three days at 10.00/day.
		return p.TransactionID == 30 &&
			p.Type == domain.PenaltyTypeLateReturn &&
			p.AmountCents == 3000 &&
			p.DaysOverdue == 3 &&
			p.DailyRateCents == 1000 &&
			p.Status == domain.PenaltyStatusPending &&
			p.GuidelineID == nil
	})).Return(true, nil)
	noteRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Type == domain.NotificationTypePenaltyCreated
	})).Return(nil)

	created, err := svc.AutoCalculateOverdue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), created)
	penaltyRepo.AssertExpectations(t)
}

func TestAutoCalculateOverdue_PrefersActiveGuidelineRate(t *testing.T) {
	penaltyRepo, guidelineRepo, txRepo, eqRepo, noteRepo, svc := newPenaltyFixture()

	guideline := &domain.PenaltyGuideline{
		ID:          4,
		Type:        domain.PenaltyTypeLateReturn,
		AmountCents: 500,
		Points:      2,
		Status:      domain.GuidelineStatusActive,
	}
	txRepo.On("ListActiveOverdue", mock.Anything, mock.Anything, domain.PenaltyTypeLateReturn).
		Return([]domain.Transaction{overdueBorrow(31, 4)}, nil)
	guidelineRepo.On("GetActiveByType", mock.Anything, domain.PenaltyTypeLateReturn).Return(guideline, nil)
	eqRepo.On("GetByID", mock.Anything, int32(7)).Return(smallDrill(), nil)
	penaltyRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Penalty) bool {
		return p.AmountCents == 2000 && // four days at 5.00/day
			p.DailyRateCents == 500 &&
			p.Points == 2 && // flat guideline points, not accrued per day
			p.GuidelineID != nil && *p.GuidelineID == 4
	})).Return(true, nil)
	noteRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	created, err := svc.AutoCalculateOverdue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), created)
}

func TestAutoCalculateOverdue_RerunIsIdempotent(t *testing.T) {
	penaltyRepo, guidelineRepo, txRepo, eqRepo, noteRepo, svc := newPenaltyFixture()

	txRepo.On("ListActiveOverdue", mock.Anything, mock.Anything, domain.PenaltyTypeLateReturn).
		Return([]domain.Transaction{overdueBorrow(32, 2)}, nil)
	guidelineRepo.On("GetActiveByType", mock.Anything, domain.PenaltyTypeLateReturn).Return(nil, domain.ErrNotFound)
	eqRepo.On("GetByID", mock.Anything, int32(7)).Return(smallDrill(), nil)
	// A concurrent run already inserted; the unique constraint reports it.
	penaltyRepo.On("Create", mock.Anything, mock.Anything).Return(false, nil)

	created, err := svc.AutoCalculateOverdue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(0), created)
	noteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAutoCalculateOverdue_OneFailureDoesNotStopTheBatch(t *testing.T) {
	penaltyRepo, guidelineRepo, txRepo, eqRepo, noteRepo, svc := newPenaltyFixture()

	txRepo.On("ListActiveOverdue", mock.Anything, mock.Anything, domain.PenaltyTypeLateReturn).
		Return([]domain.Transaction{overdueBorrow(33, 1), overdueBorrow(34, 2)}, nil)
	guidelineRepo.On("GetActiveByType", mock.Anything, domain.PenaltyTypeLateReturn).Return(nil, domain.ErrNotFound)
	eqRepo.On("GetByID", mock.Anything, int32(7)).Return(smallDrill(), nil)
	penaltyRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Penalty) bool {
		return p.TransactionID == 33
	})).Return(false, assert.AnError)
	penaltyRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Penalty) bool {
		return p.TransactionID == 34
	})).Return(true, nil)
	noteRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	created, err := svc.AutoCalculateOverdue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), created)
}

func TestCreatePenalty_ManualDamagePenalty(t *testing.T) {
	penaltyRepo, _, txRepo, eqRepo, noteRepo, svc := newPenaltyFixture()

	txRepo.On("GetByID", mock.Anything, int32(55)).Return(&domain.Transaction{
		ID: 55, EquipmentID: 7, BorrowerRFID: "USER-42",
	}, nil)
	eqRepo.On("GetByID", mock.Anything, int32(7)).Return(smallDrill(), nil)
	penaltyRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Penalty) bool {
		return p.Type == domain.PenaltyTypeDamage && p.AmountCents == 2500 && p.EquipmentName == "Cordless Drill"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Penalty).ID = 8
	}).Return(true, nil)
	noteRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	p, err := svc.CreatePenalty(context.Background(), &CreatePenaltyRequest{
		TransactionID: 55,
		Type:          domain.PenaltyTypeDamage,
		AmountCents:   2500,
		Description:   "Cracked housing",
	})
	require.NoError(t, err)
	assert.Equal(t, int32(8), p.ID)
	assert.Equal(t, domain.PenaltyStatusPending, p.Status)
}

func TestCreatePenalty_DuplicateTypeForTransactionIsRejected(t *testing.T) {
	penaltyRepo, _, txRepo, eqRepo, _, svc := newPenaltyFixture()

	txRepo.On("GetByID", mock.Anything, int32(55)).Return(&domain.Transaction{ID: 55, EquipmentID: 7}, nil)
	eqRepo.On("GetByID", mock.Anything, int32(7)).Return(smallDrill(), nil)
	penaltyRepo.On("Create", mock.Anything, mock.Anything).Return(false, nil)

	_, err := svc.CreatePenalty(context.Background(), &CreatePenaltyRequest{
		TransactionID: 55,
		Type:          domain.PenaltyTypeDamage,
		AmountCents:   2500,
	})
	assert.True(t, domain.IsValidation(err))
}

func TestCreatePenalty_ValidatesInput(t *testing.T) {
	_, _, _, _, _, svc := newPenaltyFixture()

	_, err := svc.CreatePenalty(context.Background(), &CreatePenaltyRequest{
		TransactionID: 1, Type: domain.PenaltyType("Bogus"), AmountCents: 100,
	})
	assert.True(t, domain.IsValidation(err))

	_, err = svc.CreatePenalty(context.Background(), &CreatePenaltyRequest{
		TransactionID: 1, Type: domain.PenaltyTypeDamage, AmountCents: -1,
	})
	assert.True(t, domain.IsValidation(err))
}

func TestUpdateStatus_PaidRecordsPaymentMethod(t *testing.T) {
	penaltyRepo, _, _, _, _, svc := newPenaltyFixture()

	penaltyRepo.On("GetByID", mock.Anything, int32(8)).Return(&domain.Penalty{
		ID: 8, Status: domain.PenaltyStatusPending, Notes: "Auto-generated",
	}, nil)
	penaltyRepo.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(p *domain.Penalty) bool {
		return p.Status == domain.PenaltyStatusPaid && p.PaymentMethod == "cash"
	})).Return(nil)

	p, err := svc.UpdateStatus(context.Background(), 8, domain.PenaltyStatusPaid, "cash", "settled at desk")
	require.NoError(t, err)
	assert.Equal(t, "Auto-generated\nsettled at desk", p.Notes)
}

func TestUpdateStatus_TerminalStatusIsFinal(t *testing.T) {
	penaltyRepo, _, _, _, _, svc := newPenaltyFixture()

	penaltyRepo.On("GetByID", mock.Anything, int32(8)).Return(&domain.Penalty{
		ID: 8, Status: domain.PenaltyStatusPaid,
	}, nil)

	_, err := svc.UpdateStatus(context.Background(), 8, domain.PenaltyStatusWaived, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	penaltyRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestUpdateStatus_CannotMoveBackToPending(t *testing.T) {
	penaltyRepo, _, _, _, _, svc := newPenaltyFixture()

	penaltyRepo.On("GetByID", mock.Anything, int32(8)).Return(&domain.Penalty{
		ID: 8, Status: domain.PenaltyStatusUnderReview,
	}, nil)

	_, err := svc.UpdateStatus(context.Background(), 8, domain.PenaltyStatusPending, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpdateGuideline_ArchivedGuidelineIsImmutable(t *testing.T) {
	_, guidelineRepo, _, _, _, svc := newPenaltyFixture()

	guidelineRepo.On("GetByID", mock.Anything, int32(4)).Return(&domain.PenaltyGuideline{
		ID: 4, Type: domain.PenaltyTypeLateReturn, Status: domain.GuidelineStatusArchived,
	}, nil)

	_, err := svc.UpdateGuideline(context.Background(), &domain.PenaltyGuideline{
		ID: 4, Type: domain.PenaltyTypeLateReturn, AmountCents: 100,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
