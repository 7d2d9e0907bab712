package api

import (
	"net/http"

	"github.com/blockwavenation/gtn-backend/database"
	"github.com/blockwavenation/gtn-backend/errs"
	"github.com/blockwavenation/gtn-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()
	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

func (h projectHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "projects", err))
			return
		}
		if projects == nil {
			projects = []*models.Project{}
		}
		h.responder.WriteJSON(w, projects)
	}
}

func (h projectHandler) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := requestValues(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := projectFromValues(values)
		project.Normalize()
		if err := validateEntity("project", project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Add(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"project": project,
		})
	}
}

func (h projectHandler) update() http.HandlerFunc {
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

		existing, err := h.projectRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		project := projectFromValues(values)
		project.ID = existing.ID
		project.CreatedAt = existing.CreatedAt
		project.Normalize()
		if err := validateEntity("project", project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Update(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"project": project,
		})
	}
}

func (h projectHandler) delete() http.HandlerFunc {
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

		affected, err := h.projectRepo.Delete(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}
		if affected == 0 {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}
