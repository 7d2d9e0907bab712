package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/blockwavenation/gtn-backend/errs"
	"github.com/blockwavenation/gtn-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Restore uploads carry a whole site's data and media, so the ceiling is far
// above the single-image limit.
const maxRestoreBytes = 512 << 20

type backupHandler struct {
	responder Responder
	logger    zerolog.Logger
	backups   *services.BackupService
}

func newBackupHandler(backups *services.BackupService) backupHandler {
	logger := log.With().Str("handlerName", "backupHandler").Logger()
	return backupHandler{
		responder: NewResponder(logger),
		logger:    logger,
		backups:   backups,
	}
}

// download streams a freshly built archive of all content and referenced
// media.
func (h backupHandler) download() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		archive, err := h.backups.CreateArchive(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer archive.Close()

		size, err := archive.Size()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().
			Str("filename", archive.Filename).
			Int("media_included", archive.Summary.MediaIncluded).
			Int("media_skipped", archive.Summary.MediaSkipped).
			Msg("backup exported")

		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", archive.Filename))
		w.Header().Set("Content-Length", strconv.FormatInt(size, 10))

		if _, err := io.Copy(w, archive.File()); err != nil {
			h.logger.Error().Err(err).Msg("error streaming backup archive")
		}
	}
}

// restore replaces the site's content from an uploaded archive.
func (h backupHandler) restore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRestoreBytes)

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewValidationError("restore", "file"))
			return
		}
		defer file.Close()

		summary, err := h.backups.RestoreArchive(r.Context(), file, header.Size)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().
			Interface("restored", summary.Restored).
			Int("media_restored", summary.MediaRestored).
			Int("media_failed", len(summary.MediaFailed)).
			Msg("backup restored")

		h.responder.WriteJSON(w, map[string]any{
			"success":        true,
			"restored":       summary.Restored,
			"media_restored": summary.MediaRestored,
			"media_failed":   summary.MediaFailed,
		})
	}
}
