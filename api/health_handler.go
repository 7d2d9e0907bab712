package api

import (
	"net/http"

	"github.com/blockwavenation/gtn-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newHealthHandler(db database.Database) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()
	return healthHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

// check reports liveness plus database reachability.
func (h healthHandler) check() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.db.Ping(r.Context()); err != nil {
			h.logger.Error().Err(err).Msg("database ping failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			h.responder.WriteJSON(w, map[string]any{
				"status":   "degraded",
				"database": "down",
			})
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":   "ok",
			"database": "up",
		})
	}
}
