package domain

import "time"

type SizeCategory string

const (
	SizeCategorySmall  SizeCategory = "Small"
	SizeCategoryMedium SizeCategory = "Medium"
	SizeCategoryLarge  SizeCategory = "Large"
)

type ImportanceLevel string

const (
	ImportanceLevelLow      ImportanceLevel = "Low"
	ImportanceLevelModerate ImportanceLevel = "Moderate"
	ImportanceLevelHigh     ImportanceLevel = "High"
	ImportanceLevelCritical ImportanceLevel = "Critical"
)

type Equipment struct {
	ID               int32           `json:"id"`
	RFIDTag          string          `json:"rfid_tag"`
	Name             string          `json:"name"`
	CategoryID       int32           `json:"category_id"`
	Quantity         int32           `json:"quantity"`
	SizeCategory     SizeCategory    `json:"size_category"`
	ImportanceLevel  ImportanceLevel `json:"importance_level"`
	BorrowPeriodDays int32           `json:"borrow_period_days"`
	CreatedOn        time.Time       `json:"created_on"`
	UpdatedOn        time.Time       `json:"updated_on"`
}

// RequiresApproval reports whether a borrow of this equipment must be held
// for admin sign-off before the borrower may take it.
func (e *Equipment) RequiresApproval() bool {
	return e.SizeCategory == SizeCategoryLarge
}

func ValidSizeCategory(s SizeCategory) bool {
	switch s {
	case SizeCategorySmall, SizeCategoryMedium, SizeCategoryLarge:
		return true
	}
	return false
}
