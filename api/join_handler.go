package api

import (
	"net/http"

	"github.com/blockwavenation/gtn-backend/database"
	"github.com/blockwavenation/gtn-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type joinHandler struct {
	responder       Responder
	logger          zerolog.Logger
	joinRequestRepo *database.JoinRequestRepo
}

func newJoinHandler(joinRequestRepo *database.JoinRequestRepo) joinHandler {
	logger := log.With().Str("handlerName", "joinHandler").Logger()
	return joinHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		joinRequestRepo: joinRequestRepo,
	}
}

// create records a lead from the public join form. This is the one write
// endpoint that runs without an admin session.
func (h joinHandler) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := requestValues(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		request := joinRequestFromValues(values)
		request.Normalize()
		if err := validateEntity("join request", request); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.joinRequestRepo.Add(request); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "join request", err))
			return
		}

		h.logger.Info().Str("name", request.FullName).Msg("join request received")
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"message": "Thank you for joining! We will get back to you soon.",
		})
	}
}

// list returns captured leads for the admin panel, newest first.
func (h joinHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requests, err := h.joinRequestRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "join requests", err))
			return
		}
		if requests == nil {
			requests = []*models.JoinRequest{}
		}
		h.responder.WriteJSON(w, requests)
	}
}
