package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"equiptrack-backend/internal/config"
	"equiptrack-backend/internal/domain"
	"equiptrack-backend/internal/logger"
	"equiptrack-backend/internal/repository"
	"equiptrack-backend/internal/utils"
)

type penaltyService struct {
	penaltyRepo   repository.PenaltyRepository
	guidelineRepo repository.GuidelineRepository
	txRepo        repository.TransactionRepository
	equipmentRepo repository.EquipmentRepository
	noteRepo      repository.NotificationRepository
	emailSvc      EmailService
	defaults      config.PenaltyConfig
}

func NewPenaltyService(
	penaltyRepo repository.PenaltyRepository,
	guidelineRepo repository.GuidelineRepository,
	txRepo repository.TransactionRepository,
	equipmentRepo repository.EquipmentRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
	defaults config.PenaltyConfig,
) PenaltyService {
	return &penaltyService{
		penaltyRepo:   penaltyRepo,
		guidelineRepo: guidelineRepo,
		txRepo:        txRepo,
		equipmentRepo: equipmentRepo,
		noteRepo:      noteRepo,
		emailSvc:      emailSvc,
		defaults:      defaults,
	}
}

// lateReturnBasis resolves the daily rate, points and guideline reference
// for late return penalties: the active guideline when one exists, the
// configured system defaults otherwise. The rate accrues per overdue day;
// points are charged once per violation.
func (s *penaltyService) lateReturnBasis(ctx context.Context) (dailyRateCents int64, points int32, guidelineID *int32) {
	dailyRateCents = s.defaults.DailyRateCents
	points = s.defaults.LateReturnPoints

	g, err := s.guidelineRepo.GetActiveByType(ctx, domain.PenaltyTypeLateReturn)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("Guideline lookup failed, using default rates", "error", err)
		}
		return dailyRateCents, points, nil
	}
	return g.AmountCents, g.Points, &g.ID
}

func (s *penaltyService) AutoCalculateOverdue(ctx context.Context) (int32, error) {
	now := time.Now()
	overdue, err := s.txRepo.ListActiveOverdue(ctx, now, domain.PenaltyTypeLateReturn)
	if err != nil {
		return 0, fmt.Errorf("scan overdue transactions: %w", err)
	}

	dailyRate, points, guidelineID := s.lateReturnBasis(ctx)

	var created int32
	var failed int32
	for _, tx := range overdue {
		daysOverdue := utils.DaysOverdue(tx.ExpectedReturnDate, now)
		if daysOverdue <= 0 {
			continue
		}
		amount := utils.OverduePenaltyCents(daysOverdue, s.defaults.GracePeriodDays, dailyRate, s.defaults.MaxPenaltyCents)

		eqName := ""
		if eq, eqErr := s.equipmentRepo.GetByID(ctx, tx.EquipmentID); eqErr == nil {
			eqName = eq.Name
		}

		p := &domain.Penalty{
			TransactionID:  tx.ID,
			GuidelineID:    guidelineID,
			BorrowerRFID:   tx.BorrowerRFID,
			EquipmentID:    tx.EquipmentID,
			EquipmentName:  eqName,
			Type:           domain.PenaltyTypeLateReturn,
			AmountCents:    amount,
			Points:         points,
			DaysOverdue:    daysOverdue,
			DailyRateCents: dailyRate,
			ViolationDate:  tx.ExpectedReturnDate,
			Status:         domain.PenaltyStatusPending,
			Description:    "Late return penalty",
			Notes:          fmt.Sprintf("Auto-generated: %d day(s) overdue at %s/day", daysOverdue, utils.FormatCents(dailyRate)),
		}

		// A failure on one transaction is recorded and the batch moves on.
		inserted, err := s.penaltyRepo.Create(ctx, p)
		if err != nil {
			failed++
			logger.Error("Failed to create overdue penalty",
				"transaction_id", tx.ID, "days_overdue", daysOverdue, "error", err)
			continue
		}
		if !inserted {
			// A concurrent run got there first; the unique constraint keeps
			// the result identical either way.
			continue
		}
		created++
		s.notifyPenaltyCreated(ctx, p)
	}

	logger.Info("Overdue penalty batch finished",
		"scanned", len(overdue), "created", created, "failed", failed)
	return created, nil
}

func (s *penaltyService) CreatePenalty(ctx context.Context, req *CreatePenaltyRequest) (*domain.Penalty, error) {
	if !domain.ValidPenaltyType(req.Type) {
		return nil, domain.NewValidationError("penalty_type", "unknown penalty type")
	}
	if req.AmountCents < 0 {
		return nil, domain.NewValidationError("penalty_amount", "must not be negative")
	}
	if req.DaysOverdue < 0 {
		return nil, domain.NewValidationError("days_overdue", "must not be negative")
	}

	tx, err := s.txRepo.GetByID(ctx, req.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("resolve transaction %d: %w", req.TransactionID, err)
	}
	eq, err := s.equipmentRepo.GetByID(ctx, tx.EquipmentID)
	if err != nil {
		return nil, fmt.Errorf("resolve equipment %d: %w", tx.EquipmentID, err)
	}

	guidelineID := req.GuidelineID
	points := req.Points
	if guidelineID != nil {
		g, err := s.guidelineRepo.GetByID(ctx, *guidelineID)
		if err != nil {
			return nil, fmt.Errorf("resolve guideline %d: %w", *guidelineID, err)
		}
		if points == 0 {
			points = g.Points
		}
	}

	p := &domain.Penalty{
		TransactionID: tx.ID,
		GuidelineID:   guidelineID,
		BorrowerRFID:  tx.BorrowerRFID,
		EquipmentID:   eq.ID,
		EquipmentName: eq.Name,
		Type:          req.Type,
		AmountCents:   req.AmountCents,
		Points:        points,
		DaysOverdue:   req.DaysOverdue,
		ViolationDate: time.Now(),
		Status:        domain.PenaltyStatusPending,
		Description:   req.Description,
		Notes:         req.Notes,
	}
	if p.Description == "" {
		p.Description = fmt.Sprintf("%s penalty recorded", req.Type)
	}

	inserted, err := s.penaltyRepo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create penalty: %w", err)
	}
	if !inserted {
		return nil, domain.NewValidationError("transaction_id",
			fmt.Sprintf("a %s penalty already exists for this transaction", req.Type))
	}

	s.notifyPenaltyCreated(ctx, p)
	return p, nil
}

func (s *penaltyService) UpdateStatus(ctx context.Context, penaltyID int32, status domain.PenaltyStatus, paymentMethod, notes string) (*domain.Penalty, error) {
	if !domain.ValidPenaltyStatus(status) {
		return nil, domain.NewValidationError("status", "unknown penalty status")
	}

	p, err := s.penaltyRepo.GetByID(ctx, penaltyID)
	if err != nil {
		return nil, err
	}
	if p.Status.Terminal() {
		return nil, fmt.Errorf("penalty %d is %s: %w", p.ID, p.Status, domain.ErrInvalidTransition)
	}
	if status == domain.PenaltyStatusPending && p.Status != domain.PenaltyStatusPending {
		return nil, fmt.Errorf("penalty %d cannot move back to Pending: %w", p.ID, domain.ErrInvalidTransition)
	}

	p.Status = status
	if status == domain.PenaltyStatusPaid {
		p.PaymentMethod = paymentMethod
	}
	if notes != "" {
		if p.Notes != "" {
			p.Notes += "\n"
		}
		p.Notes += notes
	}

	if err := s.penaltyRepo.UpdateStatus(ctx, p); err != nil {
		return nil, fmt.Errorf("update penalty status: %w", err)
	}
	logger.Info("Penalty status updated", "penalty_id", p.ID, "status", status)
	return p, nil
}

func (s *penaltyService) GetPenalty(ctx context.Context, id int32) (*domain.Penalty, error) {
	return s.penaltyRepo.GetByID(ctx, id)
}

func (s *penaltyService) ListPenalties(ctx context.Context, status, penaltyType string, page, pageSize int32) ([]domain.Penalty, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.penaltyRepo.List(ctx, status, penaltyType, page, pageSize)
}

func (s *penaltyService) GetStatistics(ctx context.Context) (*domain.PenaltyStatistics, error) {
	return s.penaltyRepo.GetStatistics(ctx)
}

func (s *penaltyService) CreateGuideline(ctx context.Context, g *domain.PenaltyGuideline) (*domain.PenaltyGuideline, error) {
	if !domain.ValidPenaltyType(g.Type) {
		return nil, domain.NewValidationError("penalty_type", "unknown penalty type")
	}
	if g.AmountCents < 0 {
		return nil, domain.NewValidationError("penalty_amount", "must not be negative")
	}
	if g.Status == "" {
		g.Status = domain.GuidelineStatusDraft
	}
	if err := s.guidelineRepo.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("create guideline: %w", err)
	}
	return g, nil
}

func (s *penaltyService) UpdateGuideline(ctx context.Context, g *domain.PenaltyGuideline) (*domain.PenaltyGuideline, error) {
	current, err := s.guidelineRepo.GetByID(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.GuidelineStatusArchived {
		return nil, fmt.Errorf("guideline %d is archived: %w", g.ID, domain.ErrInvalidTransition)
	}
	if !domain.ValidPenaltyType(g.Type) {
		return nil, domain.NewValidationError("penalty_type", "unknown penalty type")
	}
	if err := s.guidelineRepo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("update guideline: %w", err)
	}
	return g, nil
}

func (s *penaltyService) ArchiveGuideline(ctx context.Context, id int32) error {
	g, err := s.guidelineRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	g.Status = domain.GuidelineStatusArchived
	return s.guidelineRepo.Update(ctx, g)
}

func (s *penaltyService) ListGuidelines(ctx context.Context, status string) ([]domain.PenaltyGuideline, error) {
	return s.guidelineRepo.List(ctx, status)
}

func (s *penaltyService) notifyPenaltyCreated(ctx context.Context, p *domain.Penalty) {
	note := &domain.Notification{
		Type:  domain.NotificationTypePenaltyCreated,
		Title: fmt.Sprintf("%s penalty created", p.Type),
		Message: fmt.Sprintf("Penalty of %s recorded against %s for %s",
			utils.FormatCents(p.AmountCents), p.BorrowerRFID, p.EquipmentName),
		Attributes: map[string]string{
			"penalty_id":     fmt.Sprintf("%d", p.ID),
			"transaction_id": fmt.Sprintf("%d", p.TransactionID),
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Error("Failed to record penalty notification", "penalty_id", p.ID, "error", err)
	}
	if s.emailSvc != nil {
		if err := s.emailSvc.SendPenaltyNotice(ctx, p.BorrowerRFID, p.EquipmentName, p.AmountCents, p.DaysOverdue); err != nil {
			logger.Warn("Failed to send penalty notice", "penalty_id", p.ID, "error", err)
		}
	}
}
