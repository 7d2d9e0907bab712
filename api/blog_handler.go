package api

import (
	"net/http"

	"github.com/blockwavenation/gtn-backend/database"
	"github.com/blockwavenation/gtn-backend/errs"
	"github.com/blockwavenation/gtn-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogHandler struct {
	responder Responder
	logger    zerolog.Logger
	blogRepo  *database.BlogRepo
}

func newBlogHandler(blogRepo *database.BlogRepo) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()
	return blogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		blogRepo:  blogRepo,
	}
}

func (h blogHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := h.blogRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "blogs", err))
			return
		}
		if blogs == nil {
			blogs = []*models.Blog{}
		}
		h.responder.WriteJSON(w, blogs)
	}
}

func (h blogHandler) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := requestValues(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blog := blogFromValues(values)
		blog.Normalize()
		if err := validateEntity("blog", blog); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.blogRepo.Add(blog); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "blog", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"blog":    blog,
		})
	}
}

func (h blogHandler) update() http.HandlerFunc {
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

		existing, err := h.blogRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "blog", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("blog"))
			return
		}

		blog := blogFromValues(values)
		blog.ID = existing.ID
		blog.CreatedAt = existing.CreatedAt
		blog.Normalize()
		if err := validateEntity("blog", blog); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.blogRepo.Update(blog); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "blog", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"blog":    blog,
		})
	}
}

func (h blogHandler) delete() http.HandlerFunc {
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

		affected, err := h.blogRepo.Delete(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "blog", err))
			return
		}
		if affected == 0 {
			h.responder.WriteError(w, errs.NewNotFound("blog"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}
