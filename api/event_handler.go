package api

import (
	"net/http"

	"github.com/blockwavenation/gtn-backend/database"
	"github.com/blockwavenation/gtn-backend/errs"
	"github.com/blockwavenation/gtn-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type eventHandler struct {
	responder Responder
	logger    zerolog.Logger
	eventRepo *database.EventRepo
}

func newEventHandler(eventRepo *database.EventRepo) eventHandler {
	logger := log.With().Str("handlerName", "eventHandler").Logger()
	return eventHandler{
		responder: NewResponder(logger),
		logger:    logger,
		eventRepo: eventRepo,
	}
}

func (h eventHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := h.eventRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "events", err))
			return
		}
		if events == nil {
			events = []*models.Event{}
		}
		h.responder.WriteJSON(w, events)
	}
}

func (h eventHandler) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := requestValues(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		event, err := eventFromValues(values)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		event.Normalize()
		if err := validateEntity("event", event); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.eventRepo.Add(event); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "event", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"event":   event,
		})
	}
}

func (h eventHandler) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := requestValues(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		id, err := parseEntityID(values)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.eventRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "event", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("event"))
			return
		}

		event, err := eventFromValues(values)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		event.ID = existing.ID
		event.CreatedAt = existing.CreatedAt
		event.Normalize()
		if err := validateEntity("event", event); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.eventRepo.Update(event); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "event", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"event":   event,
		})
	}
}

func (h eventHandler) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := requestValues(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		id, err := parseEntityID(values)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		affected, err := h.eventRepo.Delete(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "event", err))
			return
		}
		if affected == 0 {
			h.responder.WriteError(w, errs.NewNotFound("event"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}
