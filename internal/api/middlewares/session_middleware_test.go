package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return Session(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Username(r.Context())))
	}))
}

func TestSessionRoundTrip(t *testing.T) {
	issue := httptest.NewRecorder()
	require.NoError(t, IssueSession(issue, testSecret, "ravi"))

	cookies := issue.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(cookies[0])
	rec := httptest.NewRecorder()
	protectedEcho(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ravi", rec.Body.String())
}

func TestSessionMissingCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	protectedEcho(t).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionRejectsTamperedToken(t *testing.T) {
	issue := httptest.NewRecorder()
	require.NoError(t, IssueSession(issue, "other-secret", "ravi"))
	cookie := issue.Result().Cookies()[0]

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	protectedEcho(t).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestClearSessionExpiresCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearSession(rec)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestUsernameMissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, Username(req.Context()))
}
