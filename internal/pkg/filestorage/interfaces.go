package filestorage

import (
	"context"
	"mime/multipart"
)

// ObjectStorage defines the interface for file storage operations. Uploads
// stream synchronously; any failure is surfaced to the caller unchanged.
type ObjectStorage interface {
	// SaveFile stores an uploaded file under the given subdirectory/prefix
	// and returns the URL at which it is reachable.
	SaveFile(ctx context.Context, fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a previously stored file, identified by the URL
	// SaveFile returned. Deleting a missing file is not an error.
	DeleteFile(ctx context.Context, fileURL string) error
}
