package booking_test

import (
	"context"
	"testing"

	"github.com/unistay/student-housing/internal/booking"
	"github.com/unistay/student-housing/internal/model"
	"github.com/unistay/student-housing/internal/storage"
)

func sampleRequest() model.BookingRequest {
	return model.BookingRequest{
		PropertyID:   "2",
		PropertyName: "Shared Dormitory Room",
		Name:         "Ann",
		Phone:        "0800000000",
		StayPeriod:   "6-12months",
		MoveInDate:   "2026-01-01",
	}
}

func TestCreateBookingInvariants(t *testing.T) {
	s := booking.NewStore(context.Background(), storage.NewMemoryKV())
	ctx := context.Background()

	b := s.CreateBooking(ctx, sampleRequest())
	if b.Status != model.StatusPending {
		t.Fatalf("new booking status = %s; want pending", b.Status)
	}
	if b.Messages == nil || len(b.Messages) != 0 {
		t.Fatalf("new booking messages = %v; want empty", b.Messages)
	}
	if b.ID == "" || b.CreatedAt == "" {
		t.Fatalf("booking missing assigned fields: %+v", b)
	}
	if b.PropertyName != "Shared Dormitory Room" {
		t.Fatalf("denormalized property name lost: %q", b.PropertyName)
	}

	// Rapid creation must still hand out distinct ids.
	seen := map[string]bool{b.ID: true}
	for i := 0; i < 50; i++ {
		nb := s.CreateBooking(ctx, sampleRequest())
		if seen[nb.ID] {
			t.Fatalf("duplicate booking id %s on iteration %d", nb.ID, i)
		}
		seen[nb.ID] = true
	}
}

func TestUpdateStatus(t *testing.T) {
	s := booking.NewStore(context.Background(), storage.NewMemoryKV())
	ctx := context.Background()
	b := s.CreateBooking(ctx, sampleRequest())

	if !s.UpdateStatus(ctx, b.ID, model.StatusAccepted) {
		t.Fatal("update of known id reported not found")
	}
	got, ok := s.GetBooking(b.ID)
	if !ok || got.Status != model.StatusAccepted {
		t.Fatalf("status after accept = %v, %v", got.Status, ok)
	}

	before := len(s.ListBookings())
	if s.UpdateStatus(ctx, "missing", model.StatusRejected) {
		t.Fatal("update of unknown id reported found")
	}
	if after := len(s.ListBookings()); after != before {
		t.Fatalf("failed update changed list length %d -> %d", before, after)
	}
}

func TestStatusLastWriteWins(t *testing.T) {
	s := booking.NewStore(context.Background(), storage.NewMemoryKV())
	ctx := context.Background()
	b := s.CreateBooking(ctx, sampleRequest())

	s.UpdateStatus(ctx, b.ID, model.StatusAccepted)
	s.UpdateStatus(ctx, b.ID, model.StatusRejected)
	got, _ := s.GetBooking(b.ID)
	if got.Status != model.StatusRejected {
		t.Fatalf("second decision did not overwrite: %s", got.Status)
	}
}

func TestMessagesAppendInOrder(t *testing.T) {
	s := booking.NewStore(context.Background(), storage.NewMemoryKV())
	ctx := context.Background()
	b := s.CreateBooking(ctx, sampleRequest())
	sender := model.Sender{ID: "tenant-1", Name: "Ann"}

	texts := []string{"hello", "is the room free?", "thanks"}
	for _, txt := range texts {
		if _, ok := s.AddMessage(ctx, b.ID, sender, txt); !ok {
			t.Fatalf("AddMessage(%q) reported booking not found", txt)
		}
	}

	got, _ := s.GetBooking(b.ID)
	if len(got.Messages) != len(texts) {
		t.Fatalf("thread has %d messages; want %d", len(got.Messages), len(texts))
	}
	for i, msg := range got.Messages {
		if msg.Text != texts[i] {
			t.Fatalf("messages[%d].Text = %q; want %q", i, msg.Text, texts[i])
		}
		if msg.BookingID != b.ID {
			t.Fatalf("messages[%d] points at booking %s", i, msg.BookingID)
		}
		if msg.SenderID != "tenant-1" || msg.SenderName != "Ann" {
			t.Fatalf("messages[%d] sender = %s/%s", i, msg.SenderID, msg.SenderName)
		}
		if i > 0 && got.Messages[i].Timestamp < got.Messages[i-1].Timestamp {
			t.Fatalf("timestamps decreased between messages %d and %d", i-1, i)
		}
	}
}

func TestMessagingAllowedAfterRejection(t *testing.T) {
	s := booking.NewStore(context.Background(), storage.NewMemoryKV())
	ctx := context.Background()
	b := s.CreateBooking(ctx, sampleRequest())

	s.UpdateStatus(ctx, b.ID, model.StatusRejected)
	got, _ := s.GetBooking(b.ID)
	if got.Status != model.StatusRejected {
		t.Fatalf("status = %s; want rejected", got.Status)
	}
	if _, ok := s.AddMessage(ctx, b.ID, model.Sender{ID: "u", Name: "U"}, "hello"); !ok {
		t.Fatal("messaging blocked on rejected booking")
	}
	got, _ = s.GetBooking(b.ID)
	if len(got.Messages) != 1 {
		t.Fatalf("rejected booking has %d messages; want 1", len(got.Messages))
	}
}

func TestAddMessageUnknownBookingIsNoop(t *testing.T) {
	s := booking.NewStore(context.Background(), storage.NewMemoryKV())
	if _, ok := s.AddMessage(context.Background(), "missing", model.Sender{ID: "u"}, "hi"); ok {
		t.Fatal("AddMessage on unknown booking reported found")
	}
}

func TestReturnedBookingIsACopy(t *testing.T) {
	s := booking.NewStore(context.Background(), storage.NewMemoryKV())
	ctx := context.Background()
	b := s.CreateBooking(ctx, sampleRequest())
	s.AddMessage(ctx, b.ID, model.Sender{ID: "u", Name: "U"}, "original")

	got, _ := s.GetBooking(b.ID)
	got.Messages[0].Text = "tampered"

	fresh, _ := s.GetBooking(b.ID)
	if fresh.Messages[0].Text != "original" {
		t.Fatal("mutating a returned booking leaked into the store")
	}
}

func TestStateSurvivesRestart(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()

	first := booking.NewStore(ctx, kv)
	b := first.CreateBooking(ctx, sampleRequest())
	first.UpdateStatus(ctx, b.ID, model.StatusAccepted)
	first.AddMessage(ctx, b.ID, model.Sender{ID: "landlord-1", Name: "Somkiat"}, "welcome")

	second := booking.NewStore(ctx, kv)
	got, ok := second.GetBooking(b.ID)
	if !ok {
		t.Fatal("restart lost the booking")
	}
	if got.Status != model.StatusAccepted {
		t.Fatalf("restart lost status: %s", got.Status)
	}
	if len(got.Messages) != 1 || got.Messages[0].Text != "welcome" {
		t.Fatalf("restart lost messages: %v", got.Messages)
	}
}

func TestCorruptStateStartsEmpty(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()
	if err := kv.Set(ctx, "bookings", "[{broken"); err != nil {
		t.Fatal(err)
	}
	s := booking.NewStore(ctx, kv)
	if got := s.ListBookings(); len(got) != 0 {
		t.Fatalf("corrupt blob produced %d bookings; want 0", len(got))
	}
	// The store must still be writable after recovery.
	if b := s.CreateBooking(ctx, sampleRequest()); b.Status != model.StatusPending {
		t.Fatalf("create after recovery returned status %s", b.Status)
	}
}
