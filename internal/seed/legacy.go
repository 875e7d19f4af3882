// Package seed imports the fixed legacy property catalog. The import is
// idempotent: templates whose title already exists are skipped, and a
// final pass removes duplicate rows left behind by earlier partial runs.
package seed

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ramahomes/internal/models"
	"ramahomes/internal/service"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sirupsen/logrus"
)

// propertyStore is the slice of the repository the orchestrator needs.
type propertyStore interface {
	ExistsByTitle(title string) (bool, error)
	ListByTitles(titles []string) ([]models.Property, error)
	Create(p *models.Property) error
	Delete(id uint) error
}

type Summary struct {
	Added             int
	Skipped           int
	Failed            int
	Total             int
	DuplicatesRemoved int
}

type Orchestrator struct {
	store    propertyStore
	media    service.MediaManager
	assetDir string
	catalog  []LegacyProperty
}

func NewOrchestrator(store propertyStore, media service.MediaManager, assetDir string) *Orchestrator {
	return &Orchestrator{
		store:    store,
		media:    media,
		assetDir: assetDir,
		catalog:  Catalog,
	}
}

// Run ensures each catalog template exists exactly once, then removes
// duplicates. A persistence failure after uploads triggers compensating
// blob deletion and aborts the run; individual media failures only
// degrade the affected template.
func (o *Orchestrator) Run(ctx context.Context, adminID uint) (Summary, error) {
	summary := Summary{Total: len(o.catalog)}

	for _, template := range o.catalog {
		exists, err := o.store.ExistsByTitle(template.Title)
		if err != nil {
			return summary, err
		}
		if exists {
			summary.Skipped++
			continue
		}

		uploaded := o.uploadTemplateMedia(ctx, template)
		if len(uploaded) == 0 {
			summary.Failed++
			logrus.WithField("title", template.Title).Warn("skipping legacy property: no media could be uploaded")
			continue
		}

		prop := o.buildProperty(template, uploaded, adminID)
		if err := o.store.Create(prop); err != nil {
			o.media.DeleteMediaRecords(ctx, uploaded)
			return summary, err
		}
		summary.Added++
	}

	removed, err := o.cleanupDuplicates(ctx)
	if err != nil {
		return summary, err
	}
	summary.DuplicatesRemoved = removed

	logrus.WithFields(logrus.Fields{
		"added":   summary.Added,
		"skipped": summary.Skipped,
		"failed":  summary.Failed,
		"total":   summary.Total,
		"removed": summary.DuplicatesRemoved,
	}).Info("legacy seed complete")
	return summary, nil
}

// uploadTemplateMedia uploads each local file individually so one bad
// file only costs that file, not the template.
func (o *Orchestrator) uploadTemplateMedia(ctx context.Context, template LegacyProperty) []models.Media {
	var media []models.Media
	for _, filename := range template.MediaFiles {
		file, err := o.readAsset(filename)
		if err != nil {
			logrus.WithError(err).WithField("file", filename).Warn("skipping seed media: unreadable file")
			continue
		}
		uploaded, err := o.media.UploadFiles(ctx, []service.UploadFile{file})
		if err != nil {
			logrus.WithError(err).WithField("file", filename).Warn("skipping seed media: upload failed")
			continue
		}
		media = append(media, uploaded...)
	}
	for i := range media {
		media[i].SortOrder = i
	}
	return media
}

func (o *Orchestrator) readAsset(filename string) (service.UploadFile, error) {
	data, err := os.ReadFile(filepath.Join(o.assetDir, filename))
	if err != nil {
		return service.UploadFile{}, err
	}
	return service.UploadFile{
		Filename: filename,
		MimeType: mimetype.Detect(data).String(),
		Size:     int64(len(data)),
		Data:     data,
	}, nil
}

func (o *Orchestrator) buildProperty(template LegacyProperty, media []models.Media, adminID uint) *models.Property {
	return &models.Property{
		Slug:         service.NewPropertySlug(template.Title),
		Title:        template.Title,
		Location:     template.Location,
		Description:  template.Description,
		Price:        template.Price,
		PropertyType: template.PropertyType,
		Status:       template.Status,
		Bedrooms:     template.Bedrooms,
		Bathrooms:    template.Bathrooms,
		Toilets:      template.Toilets,
		Kitchens:     template.Kitchens,
		AreaSqm:      template.AreaSqm,
		Features:     models.StringList(template.Features),
		Media:        media,
		CreatedByID:  adminID,
	}
}

func legacyKey(title, location string) string {
	return strings.ToLower(strings.TrimSpace(title)) + "\x00" + strings.ToLower(strings.TrimSpace(location))
}

// cleanupDuplicates keeps exactly one record per (title, location)
// group among properties matching catalog titles: the one with the most
// media, ties broken by most recent update. Everything else is deleted,
// blobs included.
func (o *Orchestrator) cleanupDuplicates(ctx context.Context) (int, error) {
	titles := make([]string, 0, len(o.catalog))
	for _, template := range o.catalog {
		titles = append(titles, template.Title)
	}

	records, err := o.store.ListByTitles(titles)
	if err != nil {
		return 0, err
	}

	grouped := make(map[string][]models.Property)
	for _, record := range records {
		key := legacyKey(record.Title, record.Location)
		grouped[key] = append(grouped[key], record)
	}

	removed := 0
	for _, group := range grouped {
		if len(group) <= 1 {
			continue
		}
		sort.SliceStable(group, func(i, j int) bool {
			if len(group[i].Media) != len(group[j].Media) {
				return len(group[i].Media) > len(group[j].Media)
			}
			return group[i].UpdatedAt.After(group[j].UpdatedAt)
		})
		for _, duplicate := range group[1:] {
			if err := o.store.Delete(duplicate.ID); err != nil {
				return removed, err
			}
			o.media.DeleteMediaRecords(ctx, duplicate.Media)
			removed++
		}
	}
	if removed > 0 {
		logrus.WithField("count", removed).Info("removed duplicate legacy properties")
	}
	return removed, nil
}
