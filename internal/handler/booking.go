package handler

// booking.go defines the booking lifecycle endpoints: submitting a
// request, listing, landlord decisions and the per-booking message
// thread.  Field validation happens at this layer; the booking store
// trusts its inputs.  Every successful mutation also publishes an event
// to the message broker; publish failures are logged inside the
// publisher and ignored here, matching the fire-and-forget posture of
// the state writes.

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/unistay/student-housing/internal/booking"
	"github.com/unistay/student-housing/internal/middleware"
	"github.com/unistay/student-housing/internal/model"
	"github.com/unistay/student-housing/internal/queue"
	queuepub "github.com/unistay/student-housing/internal/service"
)

// BookingHandler serves the booking lifecycle and messaging endpoints.
type BookingHandler struct {
	Bookings *booking.Store // booking store owning requests and threads
}

// NewBookingHandler constructs a BookingHandler and panics if the store is nil.
func NewBookingHandler(store *booking.Store) *BookingHandler {
	if store == nil {
		panic("nil store passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: store}
}

// ListBookings handles GET /v1/bookings, returning the full list in
// creation order.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Bookings.ListBookings()})
}

// GetBooking handles GET /v1/bookings/:id.  An unknown id yields 404.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	b, ok := h.Bookings.GetBooking(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	return c.JSON(http.StatusOK, b)
}

// CreateBooking handles POST /v1/bookings.  The property reference is
// carried by value and deliberately not validated against the catalog;
// only the request shape is checked here.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req model.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	missing := firstMissing(map[string]string{
		"propertyId": req.PropertyID,
		"name":       req.Name,
		"phone":      req.Phone,
		"stayPeriod": req.StayPeriod,
		"moveInDate": req.MoveInDate,
	})
	if missing != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": missing + " is required"})
	}
	b := h.Bookings.CreateBooking(c.Request().Context(), req)
	_ = queuepub.PublishBookingEvent(c.Request().Context(), queue.BookingEvent{
		Kind:         queue.KindBookingCreated,
		BookingID:    b.ID,
		PropertyID:   b.PropertyID,
		PropertyName: b.PropertyName,
		Requester:    b.Name,
		OccurredAt:   time.Now().UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusCreated, b)
}

// statusBody is the request payload for a landlord decision.
type statusBody struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /v1/bookings/:id/status.  Only accepted and
// rejected are accepted at the edge; the store itself stays permissive,
// so a second decision overwrites the first (last write wins).  An
// unknown id is a no-op answered with 404.
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	var body statusBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	status := model.BookingStatus(strings.ToLower(body.Status))
	if status != model.StatusAccepted && status != model.StatusRejected {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be accepted or rejected"})
	}
	id := c.Param("id")
	if !h.Bookings.UpdateStatus(c.Request().Context(), id, status) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	b, _ := h.Bookings.GetBooking(id)
	_ = queuepub.PublishBookingEvent(c.Request().Context(), queue.BookingEvent{
		Kind:         queue.KindBookingStatusChanged,
		BookingID:    b.ID,
		PropertyID:   b.PropertyID,
		PropertyName: b.PropertyName,
		Status:       string(b.Status),
		OccurredAt:   time.Now().UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusOK, b)
}

// messageBody is the request payload for appending to a booking's thread.
type messageBody struct {
	Text string `json:"text"`
}

// AddMessage handles POST /v1/bookings/:id/messages.  The sender identity
// comes from the request's token when present and falls back to the
// guest placeholder otherwise.  Messaging is legal in every booking
// status, including rejected.
func (h *BookingHandler) AddMessage(c echo.Context) error {
	var body messageBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Text) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "text is required"})
	}
	sender := middleware.CurrentSender(c)
	msg, ok := h.Bookings.AddMessage(c.Request().Context(), c.Param("id"), sender, body.Text)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	_ = queuepub.PublishBookingEvent(c.Request().Context(), queue.BookingEvent{
		Kind:        queue.KindBookingMessageAdded,
		BookingID:   msg.BookingID,
		SenderID:    msg.SenderID,
		MessageText: msg.Text,
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusCreated, msg)
}

// firstMissing returns the name of the first empty required field, or ""
// when all are present.  Map iteration order is not stable, so check in a
// fixed order for deterministic error messages.
func firstMissing(fields map[string]string) string {
	for _, name := range []string{"propertyId", "name", "phone", "stayPeriod", "moveInDate"} {
		if strings.TrimSpace(fields[name]) == "" {
			return name
		}
	}
	return ""
}
