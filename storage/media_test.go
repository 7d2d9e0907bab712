package storage

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/blockwavenation/gtn-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough of a PNG for content sniffing to say image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

func newTestStore(t *testing.T) *MediaStore {
	t.Helper()
	store, err := NewMediaStore(t.TempDir())
	require.NoError(t, err)
	return store
}

// uploadHeader builds a real multipart.FileHeader the way a handler would
// receive one.
func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["file"][0]
}

func TestStoreAcceptsImage(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	url, err := store.Store(uploadHeader(t, "Team Photo (1).PNG", pngHeader))
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(url, PublicPrefix), "url %q", url)
	name := strings.TrimPrefix(url, PublicPrefix)
	assert.True(t, store.Exists(name))
	assert.Regexp(t, regexp.MustCompile(`^\d+_TeamPhoto1_[0-9a-f]{8}\.png$`), name)

	rc, err := store.Open(name)
	require.NoError(t, err)
	defer rc.Close()
	stored, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, stored)
}

func TestStoreRejectsNonImage(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	_, err := store.Store(uploadHeader(t, "notes.txt", []byte("plain text pretending to be an image")))

	require.Error(t, err)
	assert.True(t, errs.IsUnsupportedMediaTypeError(err), "got %v", err)
}

func TestStoreRejectsOversizedUpload(t *testing.T) {
	t.Parallel()

	content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, MaxUploadBytes)...)

	store := newTestStore(t)
	_, err := store.Store(uploadHeader(t, "huge.png", content))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrMaxBodySizeExceeded)
}

func TestSaveRejectsUnsafeNames(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	for _, name := range []string{"", ".", "..", "../evil.png", "a/b.png", `a\b.png`} {
		err := store.Save(name, strings.NewReader("x"))
		assert.Error(t, err, "name %q", name)
	}
}

func TestSafeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"logo.png", true},
		{"1700000000_logo_a1b2c3d4.png", true},
		{"", false},
		{".", false},
		{"..", false},
		{"../logo.png", false},
		{"sub/logo.png", false},
		{`sub\logo.png`, false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, SafeName(tc.name), "name %q", tc.name)
	}
}

func TestNameFromURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{"/uploads/logo.png", "logo.png"},
		{"/uploads/../etc/passwd", ""},
		{"https://cdn.example.com/logo.png", ""},
		{"/other/logo.png", ""},
		{"/uploads/", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, NameFromURL(tc.url), "url %q", tc.url)
	}
}
