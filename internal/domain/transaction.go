package domain

import "time"

type TransactionType string

const (
	TransactionTypeBorrow TransactionType = "Borrow"
	TransactionTypeReturn TransactionType = "Return"
)

type TransactionStatus string

const (
	TransactionStatusActive   TransactionStatus = "Active"
	TransactionStatusReturned TransactionStatus = "Returned"
	// Rejected is terminal: a rejected borrow never becomes Returned and is
	// excluded from Active counts.
	TransactionStatusRejected TransactionStatus = "Rejected"
)

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "Pending"
	ApprovalStatusApproved ApprovalStatus = "Approved"
	ApprovalStatusRejected ApprovalStatus = "Rejected"
)

type ReturnCondition string

const (
	ReturnConditionExcellent ReturnCondition = "Excellent"
	ReturnConditionGood      ReturnCondition = "Good"
	ReturnConditionFair      ReturnCondition = "Fair"
	ReturnConditionDamaged   ReturnCondition = "Damaged"
)

// ReturnsToAvailable reports whether units coming back in this condition go
// to the available counter; damaged units go to the damaged counter instead.
func (c ReturnCondition) ReturnsToAvailable() bool {
	switch c {
	case ReturnConditionExcellent, ReturnConditionGood, ReturnConditionFair:
		return true
	}
	return false
}

func ValidReturnCondition(c ReturnCondition) bool {
	return c.ReturnsToAvailable() || c == ReturnConditionDamaged
}

type Transaction struct {
	ID                 int32             `json:"id"`
	ReferenceNumber    string            `json:"reference_number"`
	EquipmentID        int32             `json:"equipment_id"`
	BorrowerRFID       string            `json:"borrower_rfid"`
	Type               TransactionType   `json:"transaction_type"`
	Quantity           int32             `json:"quantity"`
	Status             TransactionStatus `json:"status"`
	ApprovalStatus     ApprovalStatus    `json:"approval_status"`
	ExpectedReturnDate time.Time         `json:"expected_return_date"`
	ReturnedOn         *time.Time        `json:"returned_on,omitempty"`
	ConditionAfter     ReturnCondition   `json:"condition_after,omitempty"`
	ApprovedBy         *int32            `json:"approved_by,omitempty"`
	ApprovedOn         *time.Time        `json:"approved_on,omitempty"`
	RejectionReason    string            `json:"rejection_reason,omitempty"`
	CreatedOn          time.Time         `json:"created_on"`
	UpdatedOn          time.Time         `json:"updated_on"`
}

// IsOverdue is the pure overdue predicate. It never mutates state; the
// penalty batch and status displays sample it.
func (t *Transaction) IsOverdue(now time.Time) bool {
	return t.Status == TransactionStatusActive && t.ExpectedReturnDate.Before(now)
}
