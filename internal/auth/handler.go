package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/nmehta/auth-sessions-api/internal/models"
	"github.com/nmehta/auth-sessions-api/internal/web"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	CreateUser(ctx context.Context, username, hashedPw string) (*models.User, error)
	// GetUserByUsername returns (nil, nil) when no user has the username.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// Handler holds auth-related HTTP handlers.
type Handler struct {
	users      UserStore
	sessions   SessionStore
	production bool
}

func NewHandler(users UserStore, sessions SessionStore, production bool) *Handler {
	return &Handler{users: users, sessions: sessions, production: production}
}

// Register creates a new user. The username check runs before the password
// check, so a taken username is reported even when the password is also too
// short.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Message(w, http.StatusBadRequest, "invalid request body")
		return
	}

	available, err := UsernameAvailable(r.Context(), h.users, req.Username)
	if err != nil {
		web.ServerError(w, err, h.production)
		return
	}
	if !available {
		web.Message(w, http.StatusUnprocessableEntity, "Username taken")
		return
	}
	if !PasswordAcceptable(req.Password) {
		web.Message(w, http.StatusUnprocessableEntity, "Password must be longer than 3 chars")
		return
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		web.ServerError(w, err, h.production)
		return
	}

	user, err := h.users.CreateUser(r.Context(), req.Username, hashed)
	if err != nil {
		web.ServerError(w, err, h.production)
		return
	}

	web.JSON(w, http.StatusCreated, user)
}

// Login authenticates a user and creates a session. Unknown usernames and
// missing credentials collapse into one "Invalid credentials" response so
// the API never reveals whether a username exists.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Message(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		web.Message(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	user, err := h.users.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		web.ServerError(w, err, h.production)
		return
	}
	if user == nil {
		web.Message(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if !PasswordMatches(req.Password, user.Password) {
		web.Message(w, http.StatusUnauthorized, "Invalid Password")
		return
	}

	// Only the public fields go into the session record.
	sess, err := h.sessions.Create(r.Context(), models.User{
		UserID:   user.UserID,
		Username: user.Username,
	})
	if err != nil {
		web.ServerError(w, err, h.production)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(sess.ExpiresAt) / time.Second),
	})

	web.Message(w, http.StatusOK, "Welcome "+user.Username)
}

// Logout destroys the current session. A request without a session still
// succeeds with a "no session" body; only a session-store failure is an
// error.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		web.Message(w, http.StatusOK, "no session")
		return
	}

	destroyed, err := h.sessions.Destroy(r.Context(), cookie.Value)
	if err != nil {
		web.ServerError(w, err, h.production)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	if !destroyed {
		web.Message(w, http.StatusOK, "no session")
		return
	}
	web.Message(w, http.StatusOK, "You are now logged out")
}
