// Package artifact resolves the single packaged file the server hands out.
// The file is owned by the deployment; this package only reads it.
package artifact

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"

	"github.com/gabriel-vasile/mimetype"
)

// ContentTypeGzip is the media type sent for the archive.
const ContentTypeGzip = "application/gzip"

// ErrNotFound is returned when the backing file is absent at the time of the request.
var ErrNotFound = errors.New("artifact: file not found")

// Artifact describes the file on disk and how it is presented to clients.
type Artifact struct {
	// Path is the absolute location of the stored file.
	Path string
	// DisplayName is the filename offered to the client in Content-Disposition.
	DisplayName string
	// ContentType is the media type sent with the file.
	ContentType string
}

// Info is the result of inspecting the artifact on disk.
type Info struct {
	Size int64
	// DetectedType is the MIME type sniffed from the file header.
	DetectedType string
}

// New returns an Artifact served as a gzip archive.
func New(path, displayName string) *Artifact {
	return &Artifact{
		Path:        path,
		DisplayName: displayName,
		ContentType: ContentTypeGzip,
	}
}

// Open opens the file for reading and returns it together with its size.
// A missing path, a path through a non-directory, or a directory yields an error wrapping ErrNotFound.
// The caller closes the returned file.
func (a *Artifact) Open() (*os.File, int64, error) {
	f, err := os.Open(a.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return nil, 0, fmt.Errorf("%w: %s", ErrNotFound, a.Path)
		}
		return nil, 0, fmt.Errorf("open artifact: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("stat artifact: %w", err)
	}
	if stat.IsDir() {
		f.Close()
		return nil, 0, fmt.Errorf("%w: %s is a directory", ErrNotFound, a.Path)
	}
	return f, stat.Size(), nil
}

// ContentDisposition renders the attachment header for DisplayName.
func (a *Artifact) ContentDisposition() string {
	return fmt.Sprintf("attachment; filename=\"%s\"", a.DisplayName)
}

// Inspect reports the size and sniffed MIME type of the file.
func (a *Artifact) Inspect() (*Info, error) {
	f, size, err := a.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, fmt.Errorf("detect artifact type: %w", err)
	}
	return &Info{
		Size:         size,
		DetectedType: mt.String(),
	}, nil
}

// IsGzip reports whether the sniffed type is a gzip archive.
func (i *Info) IsGzip() bool {
	return mimetype.EqualsAny(i.DetectedType, ContentTypeGzip, "application/x-gzip")
}
