// Package booking owns the booking requests and the message thread
// embedded in each of them.  Bookings are created pending, moved to
// accepted or rejected by a landlord decision, and never deleted.  The
// full booking list is serialized to durable key-value storage after
// every mutation and restored on startup.
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/unistay/student-housing/internal/model"
	"github.com/unistay/student-housing/internal/storage"
)

// bookingsKey is the single storage key this store owns.
const bookingsKey = "bookings"

// Store holds the booking list.  All methods are safe for concurrent use.
// Mutations persist the whole list; a failed write is logged and the
// in-memory state stands (fire-and-forget, same as the bookmark store).
type Store struct {
	mu       sync.RWMutex
	kv       storage.KV
	bookings []model.Booking
	lastID   int64 // floor for millisecond booking and message IDs
}

// NewStore restores the persisted booking list.  An absent key means a
// first run; a malformed blob is discarded and logged, and the store
// starts empty.
func NewStore(ctx context.Context, kv storage.KV) *Store {
	if kv == nil {
		panic("nil kv passed to booking.NewStore")
	}
	s := &Store{kv: kv, bookings: make([]model.Booking, 0)}
	blob, err := kv.Get(ctx, bookingsKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return s
	}
	if err != nil {
		log.Printf("booking: read bookings failed: %v", err)
		return s
	}
	var bookings []model.Booking
	if err := json.Unmarshal([]byte(blob), &bookings); err != nil {
		log.Printf("booking: discarding corrupt booking state: %v", err)
		return s
	}
	for i := range bookings {
		if bookings[i].Messages == nil {
			bookings[i].Messages = make([]model.Message, 0)
		}
	}
	s.bookings = bookings
	return s
}

// ListBookings returns the full booking list in creation order.
func (s *Store) ListBookings() []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Booking, len(s.bookings))
	for i, b := range s.bookings {
		out[i] = copyBooking(b)
	}
	return out
}

// GetBooking looks up a booking by id.  Absence is a normal outcome
// reported through the second return value.
func (s *Store) GetBooking(id string) (model.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return copyBooking(b), true
		}
	}
	return model.Booking{}, false
}

// CreateBooking appends a new booking built from the request: a fresh
// unique id, pending status, the current timestamp and an empty message
// thread.  The property reference is carried by value and not validated
// against the catalog.  The full list is persisted before returning.
func (s *Store) CreateBooking(ctx context.Context, req model.BookingRequest) model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	b := model.Booking{
		ID:             s.nextID(now),
		PropertyID:     req.PropertyID,
		PropertyName:   req.PropertyName,
		Name:           req.Name,
		Phone:          req.Phone,
		StayPeriod:     req.StayPeriod,
		MoveInDate:     req.MoveInDate,
		AdditionalNote: req.AdditionalNote,
		Status:         model.StatusPending,
		CreatedAt:      now.Format(time.RFC3339),
		Messages:       make([]model.Message, 0),
	}
	s.bookings = append(s.bookings, b)
	s.persist(ctx)
	return copyBooking(b)
}

// UpdateStatus sets the status of the matching booking and persists the
// list.  It reports whether the id was found; an unknown id is a no-op.
// There is no terminal-state guard: a second decision overwrites the
// first (last write wins).
func (s *Store) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = status
			s.persist(ctx)
			return true
		}
	}
	return false
}

// AddMessage appends a message from the given sender to the booking's
// thread and persists the list.  Messaging is legal in every status; a
// rejected booking still accepts messages.  An unknown booking id is a
// no-op reported through the bool return.
func (s *Store) AddMessage(ctx context.Context, bookingID string, sender model.Sender, text string) (model.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID != bookingID {
			continue
		}
		now := time.Now().UTC()
		msg := model.Message{
			ID:         s.nextID(now),
			BookingID:  bookingID,
			SenderID:   sender.ID,
			SenderName: sender.Name,
			Text:       text,
			Timestamp:  now.Format(time.RFC3339),
		}
		s.bookings[i].Messages = append(s.bookings[i].Messages, msg)
		s.persist(ctx)
		return msg, true
	}
	return model.Message{}, false
}

// persist serializes the full booking list to storage.  Callers must hold
// the write lock.  Failures are logged, not surfaced.
func (s *Store) persist(ctx context.Context) {
	blob, err := json.Marshal(s.bookings)
	if err != nil {
		log.Printf("booking: marshal bookings failed: %v", err)
		return
	}
	if err := s.kv.Set(ctx, bookingsKey, string(blob)); err != nil {
		log.Printf("booking: persist bookings failed: %v", err)
	}
}

// nextID produces a millisecond-timestamp id strictly greater than any id
// handed out before, so rapid calls cannot collide.  Callers must hold
// the write lock.
func (s *Store) nextID(now time.Time) string {
	ms := now.UnixMilli()
	if ms <= s.lastID {
		ms = s.lastID + 1
	}
	s.lastID = ms
	return strconv.FormatInt(ms, 10)
}

// copyBooking returns a deep enough copy that callers cannot mutate the
// store's message slice through the returned value.
func copyBooking(b model.Booking) model.Booking {
	msgs := make([]model.Message, len(b.Messages))
	copy(msgs, b.Messages)
	b.Messages = msgs
	return b
}
