package models

// Event types published to the event stream.
const (
	EventUserRegistered        = "user.registered"
	EventContactRequestSent    = "contact.request_sent"
	EventContactRequestHandled = "contact.request_handled"
)

// Event represents a lifecycle event published for downstream consumers.
type Event struct {
	EventID       string `json:"event_id"`                  // EventID is a unique identifier for the event.
	Type          string `json:"type"`                      // Type is one of the Event* constants.
	Timestamp     int64  `json:"timestamp"`                 // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	UserID        int64  `json:"user_id"`                   // UserID is the user the event belongs to.
	ContactUserID int64  `json:"contact_user_id,omitempty"` // ContactUserID is the other side of a contact edge, if any.
	RequestID     int64  `json:"request_id,omitempty"`      // RequestID is the contact edge id, if any.
	Detail        string `json:"detail,omitempty"`          // Detail carries the auth method or resulting status.
}
