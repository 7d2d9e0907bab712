package api

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blockwavenation/gtn-backend/models"
	"github.com/blockwavenation/gtn-backend/services"
	"github.com/blockwavenation/gtn-backend/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContentStore struct {
	snapshot models.ContentSnapshot
	replaced []models.ContentSnapshot
}

func (f *fakeContentStore) Snapshot(ctx context.Context) (models.ContentSnapshot, error) {
	return f.snapshot, nil
}

func (f *fakeContentStore) Replace(ctx context.Context, snapshot models.ContentSnapshot) error {
	f.replaced = append(f.replaced, snapshot)
	f.snapshot = snapshot
	return nil
}

func newTestBackupHandler(t *testing.T) (backupHandler, *fakeContentStore) {
	t.Helper()
	media, err := storage.NewMediaStore(t.TempDir())
	require.NoError(t, err)
	store := &fakeContentStore{}
	return newBackupHandler(services.NewBackupService(store, media)), store
}

func TestBackupDownload(t *testing.T) {
	t.Parallel()

	handler, store := newTestBackupHandler(t)
	store.snapshot = models.ContentSnapshot{
		Projects: []models.Project{{ID: 1, Name: "Solar Microgrid", CreatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}},
	}

	w := httptest.NewRecorder()
	handler.download()(w, httptest.NewRequest("GET", "/api/backup", nil))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "gtn-backup-")

	data := w.Body.Bytes()
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var names []string
	for _, file := range reader.File {
		names = append(names, file.Name)
	}
	assert.Contains(t, names, "manifest.json")
	assert.Contains(t, names, "data/projects.json")
}

func TestBackupRestoreEndToEnd(t *testing.T) {
	t.Parallel()

	// Export from one handler, restore through another.
	exporter, exportStore := newTestBackupHandler(t)
	exportStore.snapshot = models.ContentSnapshot{
		Projects: []models.Project{{ID: 3, Name: "Water Access", CreatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}},
		News:     []models.News{{ID: 1, Title: "Launch", Description: "We launched.", CreatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}},
	}

	exportW := httptest.NewRecorder()
	exporter.download()(exportW, httptest.NewRequest("GET", "/api/backup", nil))
	require.Equal(t, http.StatusOK, exportW.Code)

	restorer, restoreStore := newTestBackupHandler(t)

	w := httptest.NewRecorder()
	restorer.restore()(w, multipartUpload(t, "/api/backup/restore", "file", "gtn-backup.zip", exportW.Body.Bytes()))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	restored, ok := body["restored"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), restored["projects"])
	assert.Equal(t, float64(1), restored["news"])

	require.Len(t, restoreStore.replaced, 1)
	assert.Equal(t, exportStore.snapshot, restoreStore.replaced[0])
}

func TestBackupRestoreRejectsGarbage(t *testing.T) {
	t.Parallel()

	handler, store := newTestBackupHandler(t)

	w := httptest.NewRecorder()
	handler.restore()(w, multipartUpload(t, "/api/backup/restore", "file", "junk.zip", []byte("not a zip")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.replaced)
}

func TestBackupRestoreRequiresFile(t *testing.T) {
	t.Parallel()

	handler, store := newTestBackupHandler(t)

	r := httptest.NewRequest("POST", "/api/backup/restore", io.NopCloser(bytes.NewReader(nil)))
	r.Header.Set("Content-Type", "multipart/form-data; boundary=empty")

	w := httptest.NewRecorder()
	handler.restore()(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.replaced)
}
