package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Backup archive errors. A format error is always fatal for the whole
// restore; no partial application is ever observable behind one.
var (
	ErrInvalidArchive    = errors.New("invalid backup archive")
	ErrArchiveVersion    = errors.New("unsupported backup schema version")
	ErrUnsafeArchivePath = errors.New("archive entry escapes destination directory")
)

func NewArchiveFormatError(details string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidArchive,
		Details:    details,
		Cause:      cause,
	}
}

func NewArchiveVersionError(version string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrArchiveVersion,
		Details:    fmt.Sprintf("Schema version %q is not supported", version),
	}
}

func NewUnsafeArchivePathError(entryName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrUnsafeArchivePath,
		Details:    fmt.Sprintf("Entry %q resolves outside the archive root", entryName),
	}
}

func IsArchiveFormatError(err error) bool {
	return errors.Is(err, ErrInvalidArchive) ||
		errors.Is(err, ErrArchiveVersion) ||
		errors.Is(err, ErrUnsafeArchivePath)
}
