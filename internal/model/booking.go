package model

// BookingStatus enumerates the lifecycle states of a booking request.
// Every booking starts as pending; a landlord decision moves it to
// accepted or rejected.  Both decision states are terminal in normal use,
// although the store does not forbid a later overwrite (last write wins).
type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusAccepted BookingStatus = "accepted"
	StatusRejected BookingStatus = "rejected"
)

// Valid reports whether s is one of the known booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Message is one entry in a booking's conversation thread.  Messages are
// append-only, ordered by timestamp, and have no lifetime independent of
// their booking.
type Message struct {
	ID         string `json:"id"`
	BookingID  string `json:"bookingId"`
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName"`
	Text       string `json:"text"`
	Timestamp  string `json:"timestamp"` // RFC3339
}

// Sender identifies the author of an outgoing message.  It is supplied by
// the caller (typically extracted from the request's identity token) rather
// than being a fixed constant inside the store.
type Sender struct {
	ID   string
	Name string
}

// Booking records a tenant's request to rent a property, together with the
// conversation thread attached to it.  PropertyName is denormalized so the
// booking still renders if the catalog no longer contains the listing.
//
// Fields:
//  ID             – unique identifier, assigned at creation.
//  PropertyID     – referenced listing (by value, not validated).
//  PropertyName   – listing title copied at creation time.
//  Name, Phone    – requester contact details.
//  StayPeriod     – desired rental duration descriptor.
//  MoveInDate     – requested move-in date.
//  AdditionalNote – optional free-text note to the landlord.
//  Status         – lifecycle state, see BookingStatus.
//  CreatedAt      – creation timestamp, RFC3339.
//  Messages       – ordered conversation thread.
type Booking struct {
	ID             string        `json:"id"`
	PropertyID     string        `json:"propertyId"`
	PropertyName   string        `json:"propertyName"`
	Name           string        `json:"name"`
	Phone          string        `json:"phone"`
	StayPeriod     string        `json:"stayPeriod"`
	MoveInDate     string        `json:"moveInDate"`
	AdditionalNote string        `json:"additionalNote,omitempty"`
	Status         BookingStatus `json:"status"`
	CreatedAt      string        `json:"createdAt"`
	Messages       []Message     `json:"messages"`
}

// BookingRequest carries the caller-supplied fields of a new booking.  The
// store assigns ID, status, creation timestamp and the empty message thread.
type BookingRequest struct {
	PropertyID     string `json:"propertyId"`
	PropertyName   string `json:"propertyName"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	StayPeriod     string `json:"stayPeriod"`
	MoveInDate     string `json:"moveInDate"`
	AdditionalNote string `json:"additionalNote,omitempty"`
}
