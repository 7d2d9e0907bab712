package api

import (
	"errors"
	"net/http"

	"github.com/blockwavenation/gtn-backend/errs"
	"github.com/blockwavenation/gtn-backend/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	media     *storage.MediaStore
}

func newUploadHandler(media *storage.MediaStore) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()
	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		media:     media,
	}
}

// store accepts one image file under the "file" field and returns the public
// URL it was stored at.
func (h uploadHandler) store() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Slack for the multipart framing around the file itself.
		r.Body = http.MaxBytesReader(w, r.Body, storage.MaxUploadBytes+(64<<10))

		file, header, err := r.FormFile("file")
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				h.responder.WriteError(w, errs.NewMaxBodySizeError(storage.MaxUploadBytes))
				return
			}
			h.responder.WriteError(w, errs.NewValidationError("upload", "file"))
			return
		}
		file.Close()

		url, err := h.media.Store(header)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("url", url).Msg("image uploaded")
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"url":     url,
		})
	}
}
