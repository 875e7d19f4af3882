package service

import (
	"context"
	"errors"
	"net/url"

	"ramahomes/internal/apperror"
	"ramahomes/internal/models"
	"ramahomes/internal/repository"
	"ramahomes/internal/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PropertyStore is the persistence surface the pipeline drives. The
// database write is the commit point of every mutation.
type PropertyStore interface {
	Create(p *models.Property) error
	GetByID(id uint) (*models.Property, error)
	GetByIDOrSlug(identifier string, publishedOnly bool) (*models.Property, error)
	List(opts repository.ListOptions) ([]models.Property, int64, error)
	Update(p *models.Property) error
	Delete(id uint) error
}

// MediaManager uploads request files and cleans up remote blobs.
type MediaManager interface {
	UploadFiles(ctx context.Context, files []UploadFile) ([]models.Media, error)
	DeleteByPublicID(ctx context.Context, publicIDs []string)
	DeleteMediaRecords(ctx context.Context, media []models.Media)
}

// PropertyService orchestrates validation, media upload, persistence
// and compensating cleanup for property mutations. Uploads that never
// reach a committed database row are always deleted before the error
// propagates; cleanup after a committed write is advisory and never
// fails the request.
type PropertyService struct {
	store PropertyStore
	media MediaManager
}

func NewPropertyService(store PropertyStore, media MediaManager) *PropertyService {
	return &PropertyService{store: store, media: media}
}

// Create validates input, uploads the provided files, and persists a
// new property. Any failure after uploads began deletes the new blobs
// before re-raising.
func (s *PropertyService) Create(ctx context.Context, adminID uint, form url.Values, files []UploadFile) (*models.Property, error) {
	payload, err := validator.NormalizePropertyInput(form, false)
	if err != nil {
		return nil, err
	}

	uploaded, err := s.media.UploadFiles(ctx, files)
	if err != nil {
		return nil, err
	}
	if len(uploaded) == 0 {
		return nil, apperror.BadRequest("Upload at least one image or video.")
	}

	prop := &models.Property{
		Slug:        NewPropertySlug(*payload.Title),
		Features:    models.StringList{},
		Media:       uploaded,
		CreatedByID: adminID,
	}
	payload.Apply(prop)

	if err := s.store.Create(prop); err != nil {
		s.media.DeleteMediaRecords(ctx, uploaded)
		return nil, apperror.FromDB(err)
	}
	return prop, nil
}

// Update loads the property, uploads new files, applies sparse field
// changes and replaces the media list. Blobs for media removed from the
// property are deleted only after the save succeeded; newly uploaded
// blobs are deleted whenever any earlier step fails.
func (s *PropertyService) Update(ctx context.Context, adminID, id uint, form url.Values, files []UploadFile) (*models.Property, error) {
	prop, err := s.store.GetByID(id)
	if err != nil {
		return nil, propertyLookupError(err)
	}

	uploaded, err := s.media.UploadFiles(ctx, files)
	if err != nil {
		return nil, err
	}

	prop, removedPublicIDs, err := s.applyUpdate(adminID, prop, form, uploaded)
	if err != nil {
		s.media.DeleteMediaRecords(ctx, uploaded)
		return nil, err
	}

	// The save already succeeded; blob removal is advisory cleanup.
	s.media.DeleteByPublicID(ctx, removedPublicIDs)
	return prop, nil
}

func (s *PropertyService) applyUpdate(adminID uint, prop *models.Property, form url.Values, uploaded []models.Media) (*models.Property, []string, error) {
	payload, err := validator.NormalizePropertyInput(form, true)
	if err != nil {
		return nil, nil, err
	}

	removeSet := make(map[string]bool)
	for _, key := range validator.NormalizeRemovedMedia(form) {
		removeSet[key] = true
	}

	var retained []models.Media
	var removedPublicIDs []string
	for _, item := range prop.Media {
		if removeSet[item.CleanupKey()] {
			if item.PublicID != "" {
				removedPublicIDs = append(removedPublicIDs, item.PublicID)
			}
			continue
		}
		retained = append(retained, item)
	}

	nextMedia := append(retained, uploaded...)
	if len(nextMedia) == 0 {
		return nil, nil, apperror.BadRequest("A property must include at least one media item.")
	}

	previousTitle := prop.Title
	payload.Apply(prop)
	if payload.Title != nil && *payload.Title != previousTitle {
		prop.Slug = NewPropertySlug(*payload.Title)
	}
	prop.Media = nextMedia
	prop.CreatedByID = adminID

	if err := s.store.Update(prop); err != nil {
		return nil, nil, apperror.FromDB(err)
	}
	return prop, removedPublicIDs, nil
}

// Delete removes the property record, then deletes its blobs. The
// record is already gone when blob cleanup runs, so cleanup failures
// are logged, never surfaced.
func (s *PropertyService) Delete(ctx context.Context, id uint) error {
	prop, err := s.store.GetByID(id)
	if err != nil {
		return propertyLookupError(err)
	}

	if err := s.store.Delete(id); err != nil {
		return apperror.FromDB(err)
	}

	logrus.WithField("property", prop.ID).Debug("deleting media blobs for removed property")
	s.media.DeleteMediaRecords(ctx, prop.Media)
	return nil
}

func (s *PropertyService) Get(id uint) (*models.Property, error) {
	prop, err := s.store.GetByID(id)
	if err != nil {
		return nil, propertyLookupError(err)
	}
	return prop, nil
}

func (s *PropertyService) GetPublic(identifier string) (*models.Property, error) {
	prop, err := s.store.GetByIDOrSlug(identifier, true)
	if err != nil {
		return nil, propertyLookupError(err)
	}
	return prop, nil
}

func (s *PropertyService) List(opts repository.ListOptions) ([]models.Property, int64, error) {
	items, total, err := s.store.List(opts)
	if err != nil {
		return nil, 0, apperror.FromDB(err)
	}
	return items, total, nil
}

func propertyLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("Property not found.")
	}
	return apperror.FromDB(err)
}
