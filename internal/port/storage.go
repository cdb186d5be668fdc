package port

import (
	"context"
	"io"
)

// PutInput encapsulates the parameters needed to store an object.
type PutInput struct {
	Name        string
	Body        []byte
	ContentType string
}

// PutOutput contains the result of a successful store call. CID may be empty
// when the backend accepted the object but reported no content identifier.
type PutOutput struct {
	CID  string
	ETag string
}

// ObjectStorage abstracts the content-addressed object store.
type ObjectStorage interface {
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
}

// ImageSlot is a single overwritable file slot on local disk.
type ImageSlot interface {
	// Save replaces the slot content. ext is the uploaded file's extension
	// including the leading dot, possibly empty.
	Save(ctx context.Context, ext string, body io.Reader) error
	// Open returns the current slot content, or domain.ErrImageNotFound.
	Open(ctx context.Context) (io.ReadCloser, int64, string, error)
}
