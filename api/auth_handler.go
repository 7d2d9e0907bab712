package api

import (
	"net/http"

	"github.com/blockwavenation/gtn-backend/errs"
	"github.com/blockwavenation/gtn-backend/session"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	responder   Responder
	logger      zerolog.Logger
	sessions    session.Store
	credentials session.Credentials
}

func newAuthHandler(sessions session.Store, credentials session.Credentials) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()
	return authHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		sessions:    sessions,
		credentials: credentials,
	}
}

// login checks the submitted credentials and, on success, issues the admin
// session cookie. Failures are indistinguishable between a wrong username
// and a wrong password.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := requestValues(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if !h.credentials.Match(values["username"], values["password"]) {
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		if err := h.sessions.SetAdmin(w, r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Msg("admin logged in")
		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}

// status tells the admin panel whether the current request carries a valid
// admin session. Public on purpose; it reveals nothing but a boolean.
func (h authHandler) status() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]any{
			"authenticated": h.sessions.IsAdmin(r),
		})
	}
}

func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.sessions.Clear(w, r); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}
