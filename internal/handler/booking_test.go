package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/unistay/student-housing/internal/booking"
	"github.com/unistay/student-housing/internal/handler"
	"github.com/unistay/student-housing/internal/model"
	"github.com/unistay/student-housing/internal/storage"
)

func newBookingHandler(t *testing.T) (*handler.BookingHandler, *booking.Store) {
	t.Helper()
	store := booking.NewStore(context.Background(), storage.NewMemoryKV())
	return handler.NewBookingHandler(store), store
}

func doJSON(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateBookingEndpoint(t *testing.T) {
	h, _ := newBookingHandler(t)
	e := echo.New()

	body := `{"propertyId":"2","propertyName":"X","name":"Ann","phone":"0800000000","stayPeriod":"6-12months","moveInDate":"2026-01-01"}`
	c, rec := doJSON(e, http.MethodPost, "/v1/bookings", body)
	if err := h.CreateBooking(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d; want 201 (body: %s)", rec.Code, rec.Body.String())
	}
	var got model.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Status != model.StatusPending {
		t.Fatalf("created booking status = %s; want pending", got.Status)
	}
	if got.Messages == nil || len(got.Messages) != 0 {
		t.Fatalf("created booking messages = %v; want empty", got.Messages)
	}
}

func TestCreateBookingMissingField(t *testing.T) {
	h, store := newBookingHandler(t)
	e := echo.New()

	c, rec := doJSON(e, http.MethodPost, "/v1/bookings", `{"propertyId":"2","name":"Ann"}`)
	if err := h.CreateBooking(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
	if got := store.ListBookings(); len(got) != 0 {
		t.Fatalf("rejected request still created %d bookings", len(got))
	}
}

func TestGetBookingNotFound(t *testing.T) {
	h, _ := newBookingHandler(t)
	e := echo.New()

	c, rec := doJSON(e, http.MethodGet, "/v1/bookings/nope", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")
	if err := h.GetBooking(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", rec.Code)
	}
}

func TestUpdateStatusEndpoint(t *testing.T) {
	h, store := newBookingHandler(t)
	e := echo.New()
	b := store.CreateBooking(context.Background(), model.BookingRequest{
		PropertyID: "1", PropertyName: "X", Name: "Ann",
		Phone: "0800000000", StayPeriod: "6-12months", MoveInDate: "2026-01-01",
	})

	c, rec := doJSON(e, http.MethodPatch, "/v1/bookings/"+b.ID+"/status", `{"status":"rejected"}`)
	c.SetParamNames("id")
	c.SetParamValues(b.ID)
	if err := h.UpdateStatus(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	got, _ := store.GetBooking(b.ID)
	if got.Status != model.StatusRejected {
		t.Fatalf("booking status = %s; want rejected", got.Status)
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	h, store := newBookingHandler(t)
	e := echo.New()
	b := store.CreateBooking(context.Background(), model.BookingRequest{
		PropertyID: "1", PropertyName: "X", Name: "Ann",
		Phone: "0800000000", StayPeriod: "6-12months", MoveInDate: "2026-01-01",
	})

	c, rec := doJSON(e, http.MethodPatch, "/v1/bookings/"+b.ID+"/status", `{"status":"pending"}`)
	c.SetParamNames("id")
	c.SetParamValues(b.ID)
	if err := h.UpdateStatus(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
}

func TestAddMessageUsesGuestIdentityWithoutToken(t *testing.T) {
	h, store := newBookingHandler(t)
	e := echo.New()
	b := store.CreateBooking(context.Background(), model.BookingRequest{
		PropertyID: "1", PropertyName: "X", Name: "Ann",
		Phone: "0800000000", StayPeriod: "6-12months", MoveInDate: "2026-01-01",
	})

	c, rec := doJSON(e, http.MethodPost, "/v1/bookings/"+b.ID+"/messages", `{"text":"hello"}`)
	c.SetParamNames("id")
	c.SetParamValues(b.ID)
	if err := h.AddMessage(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d; want 201 (body: %s)", rec.Code, rec.Body.String())
	}
	var msg model.Message
	if err := json.Unmarshal(rec.Body.Bytes(), &msg); err != nil {
		t.Fatal(err)
	}
	if msg.SenderID != "current-user" || msg.SenderName != "You" {
		t.Fatalf("guest sender = %s/%s; want placeholder identity", msg.SenderID, msg.SenderName)
	}
}

func TestAddMessageCarriesAuthenticatedIdentity(t *testing.T) {
	h, store := newBookingHandler(t)
	e := echo.New()
	b := store.CreateBooking(context.Background(), model.BookingRequest{
		PropertyID: "1", PropertyName: "X", Name: "Ann",
		Phone: "0800000000", StayPeriod: "6-12months", MoveInDate: "2026-01-01",
	})

	c, rec := doJSON(e, http.MethodPost, "/v1/bookings/"+b.ID+"/messages", `{"text":"when can I move in?"}`)
	c.SetParamNames("id")
	c.SetParamValues(b.ID)
	// Simulate what the identity middleware stores for a valid token.
	c.Set("user_id", "tenant-42")
	c.Set("user_name", "Ann")
	if err := h.AddMessage(c); err != nil {
		t.Fatal(err)
	}
	var msg model.Message
	if err := json.Unmarshal(rec.Body.Bytes(), &msg); err != nil {
		t.Fatal(err)
	}
	if msg.SenderID != "tenant-42" || msg.SenderName != "Ann" {
		t.Fatalf("sender = %s/%s; want tenant-42/Ann", msg.SenderID, msg.SenderName)
	}
}
