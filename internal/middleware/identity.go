package middleware

// identity.go holds the user-identity lookup shared by the rate-limit
// key builder.  Public booking traffic is anonymous, so "anon" is the
// common case; admin requests carry the user_id injected by JWTAuth.

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// currentUserID returns a string form of the authenticated user ID, or
// "anon" for guests.
func currentUserID(c echo.Context) string {
	v := c.Get("user_id")
	if v == nil {
		return "anon"
	}
	switch t := v.(type) {
	case string:
		if t != "" {
			return t
		}
	case float64:
		return fmt.Sprintf("%.0f", t)
	case uint64:
		return fmt.Sprintf("%d", t)
	case int64:
		return fmt.Sprintf("%d", t)
	}
	return "anon"
}
