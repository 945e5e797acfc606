package interfaces

import "context"

// IImageStore abstracts public blob storage for menu images.
type IImageStore interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
	// Delete removes the object behind a public URL previously returned by
	// Upload.
	Delete(ctx context.Context, url string) error
}
