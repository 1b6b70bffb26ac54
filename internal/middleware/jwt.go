package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
    "github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's subject, name and role claims into the request
// context.  Token issuance happens outside this service; the provided
// secret must match the issuer's.  This middleware wraps routes that
// require an authenticated caller (landlord decision endpoints), so that
// handlers can read `c.Get("user_id")`, `c.Get("user_name")` and
// `c.Get("role")`.
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // A valid header starts with "Bearer " followed by the JWT.
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            claims, ok := parseClaims(raw, secret)
            if !ok {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }

            storeClaims(c, claims)
            return next(c)
        }
    }
}

// OptionalIdentity parses a Bearer token when one is supplied but never
// rejects the request.  Booking and messaging routes use it so that an
// authenticated caller's identity flows into new messages while guests
// fall back to the placeholder sender.
func OptionalIdentity(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get("Authorization")
            if strings.HasPrefix(auth, "Bearer ") {
                raw := strings.TrimPrefix(auth, "Bearer ")
                if claims, ok := parseClaims(raw, secret); ok {
                    storeClaims(c, claims)
                }
            }
            return next(c)
        }
    }
}

// parseClaims validates a raw HS256 token against the secret and returns
// its claim map.  Any parse or signature failure yields ok=false.
func parseClaims(raw, secret string) (jwt.MapClaims, bool) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        // Reject any signing method other than HMAC.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, echo.ErrUnauthorized
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return nil, false
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    return claims, ok
}

// storeClaims copies the identity claims into the Echo context.  Type
// assertions are left to downstream consumers.
func storeClaims(c echo.Context, claims jwt.MapClaims) {
    c.Set("user_id", claims["sub"])
    c.Set("user_name", claims["name"])
    c.Set("role", claims["role"])
}
