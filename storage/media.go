package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/blockwavenation/gtn-backend/errs"
	"github.com/google/uuid"
)

const (
	// MaxUploadBytes caps a single image upload at 2 MiB.
	MaxUploadBytes = 2 * 1024 * 1024

	// PublicPrefix is the URL prefix under which stored files are served.
	PublicPrefix = "/uploads/"
)

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// MediaStore is a directory of uploaded image files addressed by generated
// filenames. Files are referenced by URL from content rows; nothing reference
// counts them, so orphans are possible and tolerated.
type MediaStore struct {
	dir string
}

func NewMediaStore(dir string) (*MediaStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media directory: %w", err)
	}
	return &MediaStore{dir: dir}, nil
}

func (m *MediaStore) Dir() string {
	return m.dir
}

// Store validates and persists one uploaded image, returning its public URL.
// The file content is sniffed; the client-declared content type is not
// trusted.
func (m *MediaStore) Store(header *multipart.FileHeader) (string, error) {
	if header.Size > MaxUploadBytes {
		return "", errs.NewMaxBodySizeError(MaxUploadBytes)
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	sniff := make([]byte, 512)
	n, err := file.Read(sniff)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read upload: %w", err)
	}
	detected := http.DetectContentType(sniff[:n])
	if !strings.HasPrefix(detected, "image/") {
		return "", errs.NewUnsupportedMediaTypeError(detected)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	name := generateName(header.Filename)
	if err := m.Save(name, io.LimitReader(file, MaxUploadBytes)); err != nil {
		return "", err
	}

	return PublicPrefix + name, nil
}

// Save writes a file under the store directory. name must be a bare filename;
// anything that could traverse outside the directory is rejected.
func (m *MediaStore) Save(name string, r io.Reader) error {
	if !SafeName(name) {
		return errs.NewUnsafeArchivePathError(name)
	}

	dst, err := os.OpenFile(filepath.Join(m.dir, name), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create media file: %w", err)
	}
	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		return fmt.Errorf("write media file: %w", err)
	}
	return dst.Close()
}

func (m *MediaStore) Open(name string) (io.ReadCloser, error) {
	if !SafeName(name) {
		return nil, errs.NewUnsafeArchivePathError(name)
	}
	return os.Open(filepath.Join(m.dir, name))
}

func (m *MediaStore) Exists(name string) bool {
	if !SafeName(name) {
		return false
	}
	info, err := os.Stat(filepath.Join(m.dir, name))
	return err == nil && info.Mode().IsRegular()
}

// SafeName reports whether name is a plain filename with no path component.
func SafeName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return filepath.Base(name) == name
}

// NameFromURL maps a stored media URL back to its filename on disk. External
// URLs and anything outside the public prefix map to "".
func NameFromURL(url string) string {
	if !strings.HasPrefix(url, PublicPrefix) {
		return ""
	}
	name := strings.TrimPrefix(url, PublicPrefix)
	if !SafeName(name) {
		return ""
	}
	return name
}

// generateName builds a collision-resistant filename: a time prefix, the
// sanitized original base name, and a random suffix.
func generateName(original string) string {
	ext := filepath.Ext(original)
	base := unsafeNameChars.ReplaceAllString(strings.TrimSuffix(filepath.Base(original), ext), "")
	if base == "" {
		base = "file"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d_%s_%s%s", time.Now().Unix(), base, suffix, strings.ToLower(ext))
}
