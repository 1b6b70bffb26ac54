// Package queue defines message payloads exchanged over the message broker.
package queue

// Event kinds published on the booking.events queue.  Every mutation of
// the booking store produces one event.
const (
	KindBookingCreated       = "booking.created"
	KindBookingStatusChanged = "booking.status_changed"
	KindBookingMessageAdded  = "booking.message_added"
)

// BookingEvent is published after a booking mutation.  It carries enough
// denormalized information for downstream consumers to log or notify
// without reading the primary state store.  Fields that do not apply to a
// given kind are left empty.
type BookingEvent struct {
	Kind         string `json:"kind"`
	BookingID    string `json:"booking_id"`
	PropertyID   string `json:"property_id"`
	PropertyName string `json:"property_name"`
	Requester    string `json:"requester,omitempty"`
	Status       string `json:"status,omitempty"`
	SenderID     string `json:"sender_id,omitempty"`
	MessageText  string `json:"message_text,omitempty"`
	OccurredAt   string `json:"occurred_at"`
}
