// Package users serves the protected user listing.
package users

import (
	"context"
	"net/http"

	"github.com/nmehta/auth-sessions-api/internal/models"
	"github.com/nmehta/auth-sessions-api/internal/web"
)

// UserLister is the read-only slice of the user store the listing needs.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// Handler holds the user listing HTTP handlers.
type Handler struct {
	users      UserLister
	production bool
}

func NewHandler(users UserLister, production bool) *Handler {
	return &Handler{users: users, production: production}
}

// List returns every registered user's public fields. The route sits behind
// the session gate, so only authenticated clients reach it.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.users.ListUsers(r.Context())
	if err != nil {
		web.ServerError(w, err, h.production)
		return
	}
	web.JSON(w, http.StatusOK, list)
}
