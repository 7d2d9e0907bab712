package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blockwavenation/gtn-backend/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

func multipartUpload(t *testing.T, target, field, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	r := httptest.NewRequest("POST", target, &body)
	r.Header.Set("Content-Type", writer.FormDataContentType())
	return r
}

func TestUploadStoresImage(t *testing.T) {
	t.Parallel()

	media, err := storage.NewMediaStore(t.TempDir())
	require.NoError(t, err)
	handler := newUploadHandler(media)

	w := httptest.NewRecorder()
	handler.store()(w, multipartUpload(t, "/api/upload", "file", "logo.png", pngHeader))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	url, ok := body["url"].(string)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(url, storage.PublicPrefix))
	assert.True(t, media.Exists(strings.TrimPrefix(url, storage.PublicPrefix)))
}

func TestUploadRejectsNonImage(t *testing.T) {
	t.Parallel()

	media, err := storage.NewMediaStore(t.TempDir())
	require.NoError(t, err)
	handler := newUploadHandler(media)

	w := httptest.NewRecorder()
	handler.store()(w, multipartUpload(t, "/api/upload", "file", "script.sh", []byte("#!/bin/sh\nrm -rf /\n")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadRequiresFileField(t *testing.T) {
	t.Parallel()

	media, err := storage.NewMediaStore(t.TempDir())
	require.NoError(t, err)
	handler := newUploadHandler(media)

	w := httptest.NewRecorder()
	handler.store()(w, multipartUpload(t, "/api/upload", "attachment", "logo.png", pngHeader))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadRejectsOversizedBody(t *testing.T) {
	t.Parallel()

	media, err := storage.NewMediaStore(t.TempDir())
	require.NoError(t, err)
	handler := newUploadHandler(media)

	content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, storage.MaxUploadBytes)...)

	w := httptest.NewRecorder()
	handler.store()(w, multipartUpload(t, "/api/upload", "file", "huge.png", content))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
