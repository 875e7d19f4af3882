package service

import (
	"bytes"
	"context"
	"net/http"
	"regexp"
	"strings"
	"sync"

	"ramahomes/internal/apperror"
	"ramahomes/internal/domain"
	"ramahomes/internal/models"
	"ramahomes/pkg/cloudinary"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// UploadFile is an in-memory file buffer with its declared MIME type.
type UploadFile struct {
	Filename string
	MimeType string
	Size     int64
	Data     []byte
}

// MediaService moves media between request buffers and the blob store,
// shaping results into property media records.
type MediaService struct {
	cloud  cloudinary.Client
	folder string
}

func NewMediaService(cloud cloudinary.Client, folder string) *MediaService {
	return &MediaService{cloud: cloud, folder: folder}
}

func resourceTypeFor(mimeType string) string {
	if domain.MediaKindFor(mimeType) == domain.MediaKindImage {
		return cloudinary.ResourceImage
	}
	return cloudinary.ResourceVideo
}

// UploadFiles uploads each file sequentially so a mid-batch failure has
// a precisely known prefix of already-stored blobs to compensate. On
// failure that prefix is deleted and a 502 carrying the cause is
// returned.
func (s *MediaService) UploadFiles(ctx context.Context, files []UploadFile) ([]models.Media, error) {
	uploaded := make([]models.Media, 0, len(files))

	for i, file := range files {
		publicID := "prop_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
		result, err := s.cloud.Upload(ctx, bytes.NewReader(file.Data), cloudinary.UploadParams{
			Folder:       s.folder,
			PublicID:     publicID,
			ResourceType: resourceTypeFor(file.MimeType),
		})
		if err != nil {
			s.DeleteByPublicID(ctx, mediaPublicIDs(uploaded))
			return nil, apperror.Wrap(http.StatusBadGateway, "Media upload failed.", err)
		}

		uploaded = append(uploaded, models.Media{
			Kind:      domain.MediaKindFor(file.MimeType),
			URL:       result.SecureURL,
			PublicID:  result.PublicID,
			Filename:  file.Filename,
			MimeType:  file.MimeType,
			Size:      file.Size,
			SortOrder: i,
		})
	}

	return uploaded, nil
}

var safePublicID = regexp.MustCompile(`^[a-zA-Z0-9/_.-]+$`)

// DeleteByPublicID issues best-effort deletes for each identifier,
// concurrently. The resource category is not always known at deletion
// time, so both image and video destroys are attempted. Unsafe
// identifiers are never forwarded to the store, and one failing
// deletion does not abort the others.
func (s *MediaService) DeleteByPublicID(ctx context.Context, publicIDs []string) {
	var wg sync.WaitGroup
	for _, publicID := range publicIDs {
		if publicID == "" || !safePublicID.MatchString(publicID) {
			continue
		}
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			for _, resourceType := range []string{cloudinary.ResourceImage, cloudinary.ResourceVideo} {
				if err := s.cloud.Destroy(ctx, id, resourceType); err != nil {
					logrus.WithError(err).WithFields(logrus.Fields{
						"publicId":     id,
						"resourceType": resourceType,
					}).Warn("failed to delete media blob")
				}
			}
		}(publicID)
	}
	wg.Wait()
}

// DeleteMediaRecords deletes the blobs behind a list of media records,
// skipping records with no public id (legacy rows).
func (s *MediaService) DeleteMediaRecords(ctx context.Context, media []models.Media) {
	s.DeleteByPublicID(ctx, mediaPublicIDs(media))
}

func mediaPublicIDs(media []models.Media) []string {
	ids := make([]string, 0, len(media))
	for _, m := range media {
		if m.PublicID != "" {
			ids = append(ids, m.PublicID)
		}
	}
	return ids
}
