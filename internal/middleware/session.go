// Package middleware carries the echo middleware that binds each request to
// its session-owned dataset store.
package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"vendoriq/internal/dataset"
)

// StoreContextKey is the echo context key the session store is stashed under.
const StoreContextKey = "vendoriq.store"

// SessionMiddleware resolves the caller's session cookie to a dataset store.
type SessionMiddleware struct {
	sessions   *dataset.Sessions
	cookieName string
}

// NewSessionMiddleware creates a session middleware over the given registry.
func NewSessionMiddleware(sessions *dataset.Sessions, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions, cookieName: cookieName}
}

// Resolve returns the middleware. A missing or malformed cookie starts a
// fresh session; the ID is a v4 UUID stored client-side, the data stays in
// process memory.
func (m *SessionMiddleware) Resolve() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := m.sessionID(c)
			if !ok {
				id = uuid.New()
				c.SetCookie(&http.Cookie{
					Name:     m.cookieName,
					Value:    id.String(),
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			c.Set(StoreContextKey, m.sessions.Get(id))
			return next(c)
		}
	}
}

func (m *SessionMiddleware) sessionID(c echo.Context) (uuid.UUID, bool) {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(cookie.Value)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// StoreFrom extracts the session store placed on the context by Resolve.
func StoreFrom(c echo.Context) *dataset.Store {
	store, _ := c.Get(StoreContextKey).(*dataset.Store)
	return store
}
