package domain

import "time"

type NotificationType string

const (
	NotificationTypePenaltyCreated    NotificationType = "PENALTY_CREATED"
	NotificationTypeBorrowRejected    NotificationType = "BORROW_REJECTED"
	NotificationTypeLowStock          NotificationType = "LOW_STOCK"
	NotificationTypeOutOfStock        NotificationType = "OUT_OF_STOCK"
	NotificationTypeDependencyFailure NotificationType = "DEPENDENCY_FAILURE"
)

// Notification is a persisted domain event. Delivery (email, admin feed) is
// the consumer's responsibility; the core only records the fact.
type Notification struct {
	ID         int32             `json:"id"`
	Type       NotificationType  `json:"type"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	IsRead     bool              `json:"is_read"`
	Attributes map[string]string `json:"attributes,omitempty"`
	CreatedOn  time.Time         `json:"created_on"`
}
