package site

import (
	"net/http"

	"github.com/google/uuid"
)

const visitorMaxAge = 365 * 24 * 60 * 60

// ReadVisitorID returns the visitor id carried by the named cookie.
func ReadVisitorID(r *http.Request, name string) (string, bool) {
	c, err := r.Cookie(name)
	if err != nil {
		return "", false
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return "", false
	}
	return c.Value, true
}

// VisitorID returns the request's visitor id, issuing a new cookie when the
// request has none or carries a malformed one.
func VisitorID(w http.ResponseWriter, r *http.Request, name string) string {
	if id, ok := ReadVisitorID(r, name); ok {
		return id
	}
	id := uuid.NewString()
	http.SetCookie(w, VisitorCookie(name, id))
	return id
}

// VisitorCookie builds the cookie carrying a visitor id.
func VisitorCookie(name, id string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    id,
		Path:     "/",
		MaxAge:   visitorMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
