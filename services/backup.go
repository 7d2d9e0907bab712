package services

import (
	"archive/zip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/blockwavenation/gtn-backend/errs"
	"github.com/blockwavenation/gtn-backend/models"
	"github.com/blockwavenation/gtn-backend/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	backupSchemaVersion = "1"
	backupApplication   = "gtn"

	manifestName = "manifest.json"
	dataPrefix   = "data/"
	mediaPrefix  = "media/"
)

// ContentStore is the transactional view of the four content tables that the
// backup engine needs. database.Database implements it.
type ContentStore interface {
	Snapshot(ctx context.Context) (models.ContentSnapshot, error)
	Replace(ctx context.Context, snapshot models.ContentSnapshot) error
}

// BackupService serializes the content store plus referenced media into a
// single zip archive, and replaces the live state from such an archive.
//
// The two directions are deliberately asymmetric: export never fails on a
// dangling media reference, while restore is all-or-nothing for table data
// and best-effort, non-destructive for media.
type BackupService struct {
	store  ContentStore
	media  *storage.MediaStore
	logger zerolog.Logger

	// serializes restores; concurrent table swaps would interleave
	// delete/insert across transactions in undefined ways
	mu sync.Mutex
}

func NewBackupService(store ContentStore, media *storage.MediaStore) *BackupService {
	return &BackupService{
		store:  store,
		media:  media,
		logger: log.With().Str("serviceName", "backupService").Logger(),
	}
}

type backupManifest struct {
	SchemaVersion string         `json:"schema_version"`
	Application   string         `json:"application"`
	GeneratedAt   time.Time      `json:"generated_at"`
	Counts        map[string]int `json:"counts"`
	Media         []string       `json:"media"`
}

// ExportSummary reports what went into an archive. MediaSkipped counts
// referenced files that were already gone from the media store.
type ExportSummary struct {
	Counts        map[string]int `json:"counts"`
	MediaIncluded int            `json:"media_included"`
	MediaSkipped  int            `json:"media_skipped"`
}

// RestoreSummary reports the outcome of a restore. A non-empty MediaFailed
// is a partial-success warning: the table data is already committed and
// authoritative.
type RestoreSummary struct {
	Restored      map[string]int `json:"restored"`
	MediaRestored int            `json:"media_restored"`
	MediaFailed   []string       `json:"media_failed,omitempty"`
}

// BackupArchive is a temp-file backed export. The caller streams it out and
// must Close it, which also removes the backing file.
type BackupArchive struct {
	file     *os.File
	Filename string
	Summary  ExportSummary
}

func (a *BackupArchive) File() *os.File {
	if a == nil {
		return nil
	}
	return a.file
}

func (a *BackupArchive) Size() (int64, error) {
	if a == nil || a.file == nil {
		return 0, fmt.Errorf("archive not available")
	}
	info, err := a.file.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func (a *BackupArchive) Close() error {
	if a == nil || a.file == nil {
		return nil
	}
	name := a.file.Name()
	err := a.file.Close()
	if removeErr := os.Remove(name); removeErr != nil && err == nil {
		err = removeErr
	}
	a.file = nil
	return err
}

// CreateArchive exports all content rows and every referenced media file
// still present on disk. Read-only with respect to the store.
func (s *BackupService) CreateArchive(ctx context.Context) (*BackupArchive, error) {
	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("snapshot", "content tables", err)
	}

	referenced := referencedMedia(snapshot)
	included := make([]string, 0, len(referenced))
	skipped := 0
	for _, name := range referenced {
		if s.media.Exists(name) {
			included = append(included, name)
		} else {
			skipped++
			s.logger.Warn().Str("file", name).Msg("referenced media file missing, skipping")
		}
	}

	manifest := backupManifest{
		SchemaVersion: backupSchemaVersion,
		Application:   backupApplication,
		GeneratedAt:   time.Now().UTC(),
		Counts:        snapshot.Counts(),
		Media:         included,
	}

	tempFile, err := os.CreateTemp("", "gtn-backup-*.zip")
	if err != nil {
		return nil, fmt.Errorf("create temporary archive: %w", err)
	}

	cleanup := func() {
		tempFile.Close()
		os.Remove(tempFile.Name())
	}

	writer := zip.NewWriter(tempFile)
	if err := writeManifest(writer, manifest); err != nil {
		writer.Close()
		cleanup()
		return nil, err
	}
	if err := writeDataFiles(writer, snapshot); err != nil {
		writer.Close()
		cleanup()
		return nil, err
	}
	if err := s.writeMediaFiles(writer, included); err != nil {
		writer.Close()
		cleanup()
		return nil, err
	}
	if err := writer.Close(); err != nil {
		cleanup()
		return nil, fmt.Errorf("finalise archive: %w", err)
	}

	if _, err := tempFile.Seek(0, io.SeekStart); err != nil {
		cleanup()
		return nil, fmt.Errorf("rewind archive: %w", err)
	}

	return &BackupArchive{
		file:     tempFile,
		Filename: fmt.Sprintf("gtn-backup-%s.zip", manifest.GeneratedAt.Format("20060102-150405")),
		Summary: ExportSummary{
			Counts:        manifest.Counts,
			MediaIncluded: len(included),
			MediaSkipped:  skipped,
		},
	}, nil
}

// RestoreArchive replaces the content store and media store from a previously
// exported archive. The table swap is one transaction; media extraction runs
// only after it commits and never removes files the archive does not name.
func (s *BackupService) RestoreArchive(ctx context.Context, r io.Reader, size int64) (RestoreSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var summary RestoreSummary

	spool, err := os.CreateTemp("", "gtn-restore-*.zip")
	if err != nil {
		return summary, fmt.Errorf("prepare temporary archive: %w", err)
	}
	defer func() {
		spool.Close()
		os.Remove(spool.Name())
	}()

	written, err := io.Copy(spool, r)
	if err != nil {
		return summary, fmt.Errorf("read uploaded archive: %w", err)
	}
	if size > 0 && written != size {
		s.logger.Warn().Int64("expected", size).Int64("actual", written).Msg("archive size mismatch")
	}
	if _, err := spool.Seek(0, io.SeekStart); err != nil {
		return summary, fmt.Errorf("rewind archive: %w", err)
	}

	reader, err := zip.NewReader(spool, written)
	if err != nil {
		return summary, errs.NewArchiveFormatError("Not a valid zip archive", err)
	}

	// Every entry path is checked before anything is parsed or written; one
	// unsafe name rejects the whole archive.
	for _, file := range reader.File {
		if !safeEntryName(file.Name) {
			return summary, errs.NewUnsafeArchivePathError(file.Name)
		}
	}

	manifest, err := loadManifest(reader)
	if err != nil {
		return summary, err
	}
	if manifest.SchemaVersion != backupSchemaVersion {
		return summary, errs.NewArchiveVersionError(manifest.SchemaVersion)
	}

	snapshot, err := decodeSnapshot(reader)
	if err != nil {
		return summary, err
	}
	if err := validateSnapshot(snapshot); err != nil {
		return summary, err
	}

	if err := s.store.Replace(ctx, snapshot); err != nil {
		return summary, errs.NewTransactionFailedError("restore", err)
	}

	restoredMedia, failed := s.extractMedia(reader)

	summary = RestoreSummary{
		Restored:      snapshot.Counts(),
		MediaRestored: restoredMedia,
		MediaFailed:   failed,
	}
	return summary, nil
}

// referencedMedia collects the distinct media filenames referenced by any
// row's image fields, sorted for a deterministic archive layout. External
// URLs are not media-store files and are ignored.
func referencedMedia(snapshot models.ContentSnapshot) []string {
	seen := make(map[string]struct{})

	add := func(url string) {
		if name := storage.NameFromURL(url); name != "" {
			seen[name] = struct{}{}
		}
	}
	addPtr := func(url *string) {
		if url != nil {
			add(*url)
		}
	}

	for _, p := range snapshot.Projects {
		addPtr(p.LogoURL)
	}
	for _, e := range snapshot.Events {
		for _, url := range e.Images {
			add(url)
		}
	}
	for _, n := range snapshot.News {
		for _, url := range n.Images {
			add(url)
		}
	}
	for _, b := range snapshot.Blogs {
		addPtr(b.ImageURL)
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func writeManifest(writer *zip.Writer, manifest backupManifest) error {
	w, err := writer.Create(manifestName)
	if err != nil {
		return fmt.Errorf("create manifest entry: %w", err)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(manifest); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return nil
}

func writeDataFiles(writer *zip.Writer, snapshot models.ContentSnapshot) error {
	tables := []struct {
		name string
		rows any
	}{
		{"projects", snapshot.Projects},
		{"events", snapshot.Events},
		{"news", snapshot.News},
		{"blogs", snapshot.Blogs},
	}

	for _, table := range tables {
		w, err := writer.Create(dataPrefix + table.name + ".json")
		if err != nil {
			return fmt.Errorf("create %s entry: %w", table.name, err)
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(table.rows); err != nil {
			return fmt.Errorf("encode %s rows: %w", table.name, err)
		}
	}
	return nil
}

func (s *BackupService) writeMediaFiles(writer *zip.Writer, names []string) error {
	for _, name := range names {
		src, err := s.media.Open(name)
		if err != nil {
			// Raced deletion between the Exists check and here; treat it
			// like any other dangling reference.
			s.logger.Warn().Str("file", name).Err(err).Msg("media file vanished during export")
			continue
		}
		w, err := writer.Create(mediaPrefix + name)
		if err != nil {
			src.Close()
			return fmt.Errorf("create media entry %s: %w", name, err)
		}
		if _, err := io.Copy(w, src); err != nil {
			src.Close()
			return fmt.Errorf("write media entry %s: %w", name, err)
		}
		src.Close()
	}
	return nil
}

func loadManifest(reader *zip.Reader) (backupManifest, error) {
	var manifest backupManifest

	var entry *zip.File
	for _, file := range reader.File {
		if file.Name == manifestName {
			entry = file
			break
		}
	}
	if entry == nil {
		return manifest, errs.NewArchiveFormatError("Missing manifest.json", nil)
	}

	rc, err := entry.Open()
	if err != nil {
		return manifest, errs.NewArchiveFormatError("Unreadable manifest.json", err)
	}
	defer rc.Close()

	if err := json.NewDecoder(rc).Decode(&manifest); err != nil {
		return manifest, errs.NewArchiveFormatError("Malformed manifest.json", err)
	}
	return manifest, nil
}

func decodeSnapshot(reader *zip.Reader) (models.ContentSnapshot, error) {
	var snapshot models.ContentSnapshot

	if err := decodeDataFile(reader, "projects", &snapshot.Projects); err != nil {
		return snapshot, err
	}
	if err := decodeDataFile(reader, "events", &snapshot.Events); err != nil {
		return snapshot, err
	}
	if err := decodeDataFile(reader, "news", &snapshot.News); err != nil {
		return snapshot, err
	}
	if err := decodeDataFile(reader, "blogs", &snapshot.Blogs); err != nil {
		return snapshot, err
	}
	return snapshot, nil
}

func decodeDataFile(reader *zip.Reader, table string, rows any) error {
	entryName := dataPrefix + table + ".json"

	var entry *zip.File
	for _, file := range reader.File {
		if file.Name == entryName {
			entry = file
			break
		}
	}
	if entry == nil {
		return errs.NewArchiveFormatError(fmt.Sprintf("Missing %s", entryName), nil)
	}

	rc, err := entry.Open()
	if err != nil {
		return errs.NewArchiveFormatError(fmt.Sprintf("Unreadable %s", entryName), err)
	}
	defer rc.Close()

	if err := json.NewDecoder(rc).Decode(rows); err != nil {
		return errs.NewArchiveFormatError(fmt.Sprintf("Malformed %s", entryName), err)
	}
	return nil
}

// validateSnapshot enforces the same required-field contract as create on
// every parsed row. One bad row fails the whole restore; there is no per-row
// skipping on this path.
func validateSnapshot(snapshot models.ContentSnapshot) error {
	for i := range snapshot.Projects {
		snapshot.Projects[i].Normalize()
		if err := models.Validate(&snapshot.Projects[i]); err != nil {
			return errs.NewValidationError("project", models.RequiredFieldError(err))
		}
	}
	for i := range snapshot.Events {
		snapshot.Events[i].Normalize()
		if err := models.Validate(&snapshot.Events[i]); err != nil {
			return errs.NewValidationError("event", models.RequiredFieldError(err))
		}
	}
	for i := range snapshot.News {
		snapshot.News[i].Normalize()
		if err := models.Validate(&snapshot.News[i]); err != nil {
			return errs.NewValidationError("news", models.RequiredFieldError(err))
		}
	}
	for i := range snapshot.Blogs {
		snapshot.Blogs[i].Normalize()
		if err := models.Validate(&snapshot.Blogs[i]); err != nil {
			return errs.NewValidationError("blog", models.RequiredFieldError(err))
		}
	}
	return nil
}

// extractMedia writes every media/ entry into the media store, overwriting
// same-named files and leaving everything else in place. Failures are
// collected, not fatal: the committed table data is already authoritative.
func (s *BackupService) extractMedia(reader *zip.Reader) (int, []string) {
	restored := 0
	var failed []string

	for _, file := range reader.File {
		if !strings.HasPrefix(file.Name, mediaPrefix) || file.FileInfo().IsDir() {
			continue
		}
		name := strings.TrimPrefix(file.Name, mediaPrefix)

		rc, err := file.Open()
		if err != nil {
			s.logger.Error().Str("file", name).Err(err).Msg("failed to open media entry")
			failed = append(failed, name)
			continue
		}
		err = s.media.Save(name, rc)
		rc.Close()
		if err != nil {
			s.logger.Error().Str("file", name).Err(err).Msg("failed to extract media entry")
			failed = append(failed, name)
			continue
		}
		restored++
	}

	return restored, failed
}

// safeEntryName accepts only forward-slash relative paths that stay inside
// the archive root.
func safeEntryName(name string) bool {
	if name == "" {
		return false
	}
	if strings.HasPrefix(name, "/") || strings.Contains(name, `\`) {
		return false
	}
	cleaned := path.Clean(name)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return false
	}
	for _, segment := range strings.Split(name, "/") {
		if segment == ".." {
			return false
		}
	}
	return true
}
