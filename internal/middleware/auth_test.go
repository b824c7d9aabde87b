package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmehta/auth-sessions-api/internal/auth"
	"github.com/nmehta/auth-sessions-api/internal/models"
)

type erroringSessions struct{}

func (erroringSessions) Create(context.Context, models.User) (*models.Session, error) {
	return nil, errors.New("session store down")
}
func (erroringSessions) Load(context.Context, string) (*models.Session, error) {
	return nil, errors.New("session store down")
}
func (erroringSessions) Destroy(context.Context, string) (bool, error) {
	return false, errors.New("session store down")
}

func gated(sessions auth.SessionStore) (http.Handler, *models.User) {
	var seen models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u, ok := UserFrom(r.Context()); ok {
			seen = u
		}
		w.WriteHeader(http.StatusOK)
	})
	return Restricted(sessions, false)(next), &seen
}

func TestRestricted_NoCookie(t *testing.T) {
	t.Parallel()

	h, _ := gated(auth.NewMemorySessionStore(time.Hour))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"you shall not pass"}`, rec.Body.String())
}

func TestRestricted_UnknownSession(t *testing.T) {
	t.Parallel()

	h, _ := gated(auth.NewMemorySessionStore(time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: "stale"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"you shall not pass"}`, rec.Body.String())
}

func TestRestricted_ValidSession(t *testing.T) {
	t.Parallel()

	sessions := auth.NewMemorySessionStore(time.Hour)
	sess, err := sessions.Create(context.Background(), models.User{UserID: 2, Username: "sue"})
	require.NoError(t, err)

	h, seen := gated(sessions)
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: sess.ID})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.User{UserID: 2, Username: "sue"}, *seen)
}

func TestRestricted_ExpiredSession(t *testing.T) {
	t.Parallel()

	sessions := auth.NewMemorySessionStore(-time.Minute)
	sess, err := sessions.Create(context.Background(), models.User{UserID: 1, Username: "bob"})
	require.NoError(t, err)

	h, _ := gated(sessions)
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: sess.ID})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRestricted_StoreError(t *testing.T) {
	t.Parallel()

	h, _ := gated(erroringSessions{})
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: "whatever"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUserFrom_EmptyContext(t *testing.T) {
	t.Parallel()

	_, ok := UserFrom(context.Background())
	assert.False(t, ok)
}
