// Package cloudinary wraps the Cloudinary SDK behind a small client
// interface so callers can swap in fakes.
package cloudinary

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"
)

// Resource types understood by the remote store.
const (
	ResourceImage = "image"
	ResourceVideo = "video"
)

type UploadParams struct {
	Folder       string
	PublicID     string
	ResourceType string
}

type UploadResult struct {
	SecureURL string
	PublicID  string
}

// Client is the blob-store surface the rest of the system depends on.
type Client interface {
	Upload(ctx context.Context, file io.Reader, params UploadParams) (*UploadResult, error)
	Destroy(ctx context.Context, publicID, resourceType string) error
}

type clientImpl struct {
	uploader *uploader.API
}

var invalidateTrue = true

// NewClientFromParams builds a Client from Cloudinary cloud name, API key, and secret.
func NewClientFromParams(cloudName, apiKey, apiSecret string) (Client, error) {
	cfg, err := config.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	up, err := uploader.NewWithConfiguration(cfg)
	if err != nil {
		return nil, err
	}
	return &clientImpl{uploader: up}, nil
}

func (c *clientImpl) Upload(ctx context.Context, file io.Reader, params UploadParams) (*UploadResult, error) {
	result, err := c.uploader.Upload(ctx, file, uploader.UploadParams{
		Folder:       params.Folder,
		PublicID:     params.PublicID,
		ResourceType: params.ResourceType,
	})
	if err != nil {
		return nil, err
	}
	return &UploadResult{
		SecureURL: result.SecureURL,
		PublicID:  result.PublicID,
	}, nil
}

func (c *clientImpl) Destroy(ctx context.Context, publicID, resourceType string) error {
	_, err := c.uploader.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
		Invalidate:   &invalidateTrue,
	})
	return err
}
