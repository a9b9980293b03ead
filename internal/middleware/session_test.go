package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendoriq/internal/dataset"
	"vendoriq/internal/models"
)

const cookieName = "vendoriq_session"

func runResolved(t *testing.T, m *SessionMiddleware, req *http.Request) (*dataset.Store, *httptest.ResponseRecorder) {
	t.Helper()
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	var store *dataset.Store
	handler := m.Resolve()(func(c echo.Context) error {
		store = StoreFrom(c)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return store, rec
}

func TestResolveNewSessionSetsCookie(t *testing.T) {
	m := NewSessionMiddleware(dataset.NewSessions(), cookieName)
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	store, rec := runResolved(t, m, req)
	require.NotNil(t, store)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookieName, cookies[0].Name)
	_, err := uuid.Parse(cookies[0].Value)
	assert.NoError(t, err)
	assert.True(t, cookies[0].HttpOnly)
}

func TestResolveExistingSessionReusesStore(t *testing.T) {
	sessions := dataset.NewSessions()
	m := NewSessionMiddleware(sessions, cookieName)
	id := uuid.New()
	sessions.Get(id).Append(&models.Dataset{Records: []models.Record{{Supplier: "A", Net: 1}}})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: id.String()})

	store, rec := runResolved(t, m, req)
	require.NotNil(t, store)
	assert.Equal(t, 1, store.Len())
	// No new cookie when the existing one is valid.
	assert.Empty(t, rec.Result().Cookies())
	assert.Equal(t, 1, sessions.Count())
}

func TestResolveMalformedCookieStartsFresh(t *testing.T) {
	sessions := dataset.NewSessions()
	m := NewSessionMiddleware(sessions, cookieName)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "not-a-uuid"})

	store, rec := runResolved(t, m, req)
	require.NotNil(t, store)
	assert.Equal(t, 0, store.Len())
	require.Len(t, rec.Result().Cookies(), 1)
}

func TestStoreFromMissing(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Nil(t, StoreFrom(c))
}
