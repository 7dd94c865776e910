package domain

import "time"

type GuidelineStatus string

const (
	GuidelineStatusDraft    GuidelineStatus = "draft"
	GuidelineStatusActive   GuidelineStatus = "active"
	GuidelineStatusArchived GuidelineStatus = "archived"
)

// PenaltyGuideline is an admin-configured rule used as the default basis for
// a penalty of its type. Read-only input to the penalty engine.
type PenaltyGuideline struct {
	ID          int32           `json:"id"`
	Type        PenaltyType     `json:"penalty_type"`
	AmountCents int64           `json:"penalty_amount_cents"`
	Points      int32           `json:"penalty_points"`
	Status      GuidelineStatus `json:"status"`
	Description string          `json:"description,omitempty"`
	CreatedOn   time.Time       `json:"created_on"`
	UpdatedOn   time.Time       `json:"updated_on"`
}
