package api

import (
	"net/http"

	"github.com/blockwavenation/gtn-backend/database"
	"github.com/blockwavenation/gtn-backend/errs"
	"github.com/blockwavenation/gtn-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type newsHandler struct {
	responder Responder
	logger    zerolog.Logger
	newsRepo  *database.NewsRepo
}

func newNewsHandler(newsRepo *database.NewsRepo) newsHandler {
	logger := log.With().Str("handlerName", "newsHandler").Logger()
	return newsHandler{
		responder: NewResponder(logger),
		logger:    logger,
		newsRepo:  newsRepo,
	}
}

func (h newsHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.newsRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "news", err))
			return
		}
		if items == nil {
			items = []*models.News{}
		}
		h.responder.WriteJSON(w, items)
	}
}

func (h newsHandler) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := requestValues(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		item, err := newsFromValues(values)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		item.Normalize()
		if err := validateEntity("news", item); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.newsRepo.Add(item); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "news", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"news":    item,
		})
	}
}

func (h newsHandler) update() http.HandlerFunc {
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

		existing, err := h.newsRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "news", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("news"))
			return
		}

		item, err := newsFromValues(values)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		item.ID = existing.ID
		item.CreatedAt = existing.CreatedAt
		item.Normalize()
		if err := validateEntity("news", item); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.newsRepo.Update(item); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "news", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"news":    item,
		})
	}
}

func (h newsHandler) delete() http.HandlerFunc {
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

		affected, err := h.newsRepo.Delete(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "news", err))
			return
		}
		if affected == 0 {
			h.responder.WriteError(w, errs.NewNotFound("news"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}
