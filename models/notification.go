package models

import "time"

// SendNotificationItem is one tribunal communication attached to a case.
// Notifications share the per-party viewing mechanics of applications but
// have no response lifecycle of their own.
type SendNotificationItem struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body,omitempty"`
	SentDate time.Time `json:"sentDate"`

	ViewStatus PartyViewSet `json:"perUserStatus,omitzero"`
}
