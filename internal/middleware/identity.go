package middleware

// identity.go defines helper functions shared across middleware files and
// handlers.  CurrentSender resolves the identity attached to the request
// by JWTAuth or OptionalIdentity; requests without a token resolve to a
// fixed guest placeholder so messaging never requires a login.

import (
    "github.com/labstack/echo/v4"

    "github.com/unistay/student-housing/internal/model"
)

// Placeholder identity used when no caller identity is attached to the
// request.  Messaging works for guests, it just cannot attribute them.
const (
    guestSenderID   = "current-user"
    guestSenderName = "You"
)

// CurrentSender extracts the message sender identity from the request
// context.  It returns the guest placeholder when no token was presented
// or the claims are missing.
func CurrentSender(c echo.Context) model.Sender {
    sender := model.Sender{ID: guestSenderID, Name: guestSenderName}
    if v, ok := c.Get("user_id").(string); ok && v != "" {
        sender.ID = v
        sender.Name = v // fall back to the id when no name claim exists
    }
    if v, ok := c.Get("user_name").(string); ok && v != "" {
        sender.Name = v
    }
    return sender
}
