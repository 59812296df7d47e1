package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
)

// ErrUploadsDisabled is returned when no Cloudinary credentials are configured.
var ErrUploadsDisabled = errors.New("creative uploads are not configured")

// CreativeUploader stores ad creatives and returns their public URL.
type CreativeUploader interface {
	UploadCreative(ctx context.Context, file io.Reader, filename, folder string, kind models.CreativeType) (string, error)
}

// DisabledUploader stands in when no Cloudinary credentials are configured.
type DisabledUploader struct{}

func (DisabledUploader) UploadCreative(context.Context, io.Reader, string, string, models.CreativeType) (string, error) {
	return "", ErrUploadsDisabled
}

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

var _ CreativeUploader = (*CloudinaryService)(nil)

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

func resourceTypeFor(kind models.CreativeType) string {
	if kind == models.CreativeVideo {
		return "video"
	}
	return "image"
}

// UploadCreative uploads a single creative and returns the secure URL
func (s *CloudinaryService) UploadCreative(ctx context.Context, file io.Reader, filename, folder string, kind models.CreativeType) (string, error) {
	// Use pointer booleans as required by the cloudinary SDK
	unique := true
	overwrite := false
	params := uploader.UploadParams{
		Folder:         folder,
		ResourceType:   resourceTypeFor(kind),
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}
	if filename != "" {
		params.PublicID = filename
	}

	result, err := s.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return "", fmt.Errorf("failed to upload creative: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("failed to upload creative: %s", result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}
	return result.SecureURL, nil
}
