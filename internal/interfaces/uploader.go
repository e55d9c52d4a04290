package interfaces

import "context"

// Uploader stores product images and hands back the CDN URL. The public id
// is folder/filename, which is what DestroyByPublicID expects when an image
// is replaced or its product removed.
type Uploader interface {
	UploadBytes(ctx context.Context, folder string, filename string, b []byte) (string, error)
	DestroyByPublicID(ctx context.Context, publicID string) error
}
