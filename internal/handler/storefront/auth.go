package storefront

import (
	"net/http"
	"sync/atomic"

	"github.com/neotechlabs/storefront/internal/domain"
	"github.com/neotechlabs/storefront/internal/middleware"
	"github.com/neotechlabs/storefront/internal/telemetry"
)

const loginFailedMessage = "Invalid email or password. Password must be at least 6 characters."

// AuthHandler handles sign-in and sign-out. Sign-in lives on the
// checkout page, so both outcomes land back there.
type AuthHandler struct {
	sessions domain.SessionStore

	// busy rejects overlapping sign-in attempts while the credential
	// check is in flight.
	busy atomic.Bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(sessions domain.SessionStore) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := middleware.GetLogger(ctx)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	if !h.busy.CompareAndSwap(false, true) {
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		return
	}
	defer h.busy.Store(false)

	email := r.FormValue("email")
	password := r.FormValue("password")

	ok, err := h.sessions.Login(ctx, email, password)
	if err != nil {
		logger.Warn("sign-in aborted", "error", err)
		http.Redirect(w, r, "/checkout?login_error=1", http.StatusSeeOther)
		return
	}

	if !ok {
		if telemetry.Business != nil {
			telemetry.Business.LoginFailed.Inc()
		}
		logger.Info("sign-in rejected")
		http.Redirect(w, r, "/checkout?login_error=1", http.StatusSeeOther)
		return
	}

	if telemetry.Business != nil {
		telemetry.Business.Logins.Inc()
	}
	logger.Info("sign-in succeeded")
	http.Redirect(w, r, "/checkout", http.StatusSeeOther)
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
