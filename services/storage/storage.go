// File: services/storage/storage.go
package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService stores listing photos and resolves them to delivery URLs.
type StorageService interface {
	Upload(ctx context.Context, publicID string, data []byte) error
	Delete(ctx context.Context, publicID string) error
	GetDownloadURL(publicID string) string
}

type cloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewStorageService creates a Cloudinary-backed StorageService.
func NewStorageService(cld *cloudinary.Cloudinary) StorageService {
	return &cloudinaryStorage{cld: cld}
}

// Upload stores the image bytes under the given public ID, overwriting any
// previous asset with the same ID.
func (s *cloudinaryStorage) Upload(ctx context.Context, publicID string, data []byte) error {
	result, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:  publicID,
		Overwrite: api.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("storage: failed to upload %s: %w", publicID, err)
	}
	if result.PublicID == "" {
		return fmt.Errorf("storage: no public ID returned for %s", publicID)
	}
	return nil
}

// Delete removes the asset with the given public ID.
func (s *cloudinaryStorage) Delete(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("storage: failed to delete %s: %w", publicID, err)
	}
	return nil
}

// GetDownloadURL builds the public delivery URL for an uploaded image.
func (s *cloudinaryStorage) GetDownloadURL(publicID string) string {
	img, err := s.cld.Image(publicID)
	if err != nil {
		return ""
	}
	url, err := img.String()
	if err != nil {
		return ""
	}
	return url
}
