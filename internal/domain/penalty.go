package domain

import "time"

type PenaltyType string

const (
	PenaltyTypeLateReturn PenaltyType = "Late Return"
	PenaltyTypeDamage     PenaltyType = "Damage"
	PenaltyTypeLoss       PenaltyType = "Loss"
	PenaltyTypeOther      PenaltyType = "Other"
)

func ValidPenaltyType(t PenaltyType) bool {
	switch t {
	case PenaltyTypeLateReturn, PenaltyTypeDamage, PenaltyTypeLoss, PenaltyTypeOther:
		return true
	}
	return false
}

type PenaltyStatus string

const (
	PenaltyStatusPending     PenaltyStatus = "Pending"
	PenaltyStatusPaid        PenaltyStatus = "Paid"
	PenaltyStatusWaived      PenaltyStatus = "Waived"
	PenaltyStatusUnderReview PenaltyStatus = "Under Review"
)

func ValidPenaltyStatus(s PenaltyStatus) bool {
	switch s {
	case PenaltyStatusPending, PenaltyStatusPaid, PenaltyStatusWaived, PenaltyStatusUnderReview:
		return true
	}
	return false
}

// Terminal reports whether no further status transition is permitted.
func (s PenaltyStatus) Terminal() bool {
	return s == PenaltyStatusPaid || s == PenaltyStatusWaived
}

// Penalty is a tracked amount only; no payment is processed. At most one
// penalty exists per transaction per penalty type.
type Penalty struct {
	ID             int32         `json:"id"`
	TransactionID  int32         `json:"transaction_id"`
	GuidelineID    *int32        `json:"guideline_id,omitempty"`
	BorrowerRFID   string        `json:"borrower_rfid"`
	EquipmentID    int32         `json:"equipment_id"`
	EquipmentName  string        `json:"equipment_name"`
	Type           PenaltyType   `json:"penalty_type"`
	AmountCents    int64         `json:"amount_cents"`
	Points         int32         `json:"penalty_points"`
	DaysOverdue    int32         `json:"days_overdue"`
	DailyRateCents int64         `json:"daily_rate_cents"`
	ViolationDate  time.Time     `json:"violation_date"`
	Status         PenaltyStatus `json:"status"`
	PaymentMethod  string        `json:"payment_method,omitempty"`
	Description    string        `json:"description,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	CreatedOn      time.Time     `json:"created_on"`
	UpdatedOn      time.Time     `json:"updated_on"`
}

// PenaltyStatistics summarizes penalties for the admin dashboard.
type PenaltyStatistics struct {
	TotalCount       int32            `json:"total_count"`
	TotalOwedCents   int64            `json:"total_owed_cents"`
	CountByStatus    map[string]int32 `json:"count_by_status"`
	CountByType      map[string]int32 `json:"count_by_type"`
	PendingOwedCents int64            `json:"pending_owed_cents"`
}
