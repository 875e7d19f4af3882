package repository

import (
	"strings"

	"ramahomes/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// ListOptions are pre-validated by the handler layer: Page and Limit
// are already clamped and SortBy is from the allow-list.
type ListOptions struct {
	Page          int
	Limit         int
	SortBy        string
	SortOrder     string
	Search        string
	Status        string
	PublishedOnly bool
}

var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"price":     "price",
	"title":     "title",
	"status":    "status",
}

func withMedia(db *gorm.DB) *gorm.DB {
	return db.Preload("Media", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC, id ASC")
	})
}

func (r *PropertyRepository) Create(p *models.Property) error {
	return r.db.Create(p).Error
}

func (r *PropertyRepository) GetByID(id uint) (*models.Property, error) {
	var p models.Property
	if err := withMedia(r.db).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByIDOrSlug resolves an identifier that is either a numeric id or a
// slug. Slugs always carry a non-leading-digit base, so a purely
// numeric identifier is never a slug.
func (r *PropertyRepository) GetByIDOrSlug(identifier string, publishedOnly bool) (*models.Property, error) {
	query := withMedia(r.db)
	if publishedOnly {
		query = query.Where("status = ?", "published")
	}

	var p models.Property
	var err error
	if isNumeric(identifier) {
		err = query.Where("id = ?", identifier).First(&p).Error
	} else {
		err = query.Where("slug = ?", identifier).First(&p).Error
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PropertyRepository) List(opts ListOptions) ([]models.Property, int64, error) {
	query := r.db.Model(&models.Property{})

	if opts.PublishedOnly {
		query = query.Where("status = ?", "published")
	} else if opts.Status != "" && opts.Status != "all" {
		query = query.Where("status = ?", opts.Status)
	}
	if search := strings.TrimSpace(opts.Search); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title LIKE ? OR location LIKE ? OR description LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[opts.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if opts.SortOrder == "asc" {
		direction = "ASC"
	}

	var items []models.Property
	err := withMedia(query).
		Order(column + " " + direction).
		Offset((opts.Page - 1) * opts.Limit).
		Limit(opts.Limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update persists field changes and replaces the media list wholesale
// in one transaction; media rows have no identity of their own.
func (r *PropertyRepository) Update(p *models.Property) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", p.ID).Delete(&models.Media{}).Error; err != nil {
			return err
		}
		for i := range p.Media {
			p.Media[i].ID = 0
			p.Media[i].PropertyID = p.ID
			p.Media[i].SortOrder = i
		}
		if err := tx.Omit(clause.Associations).Save(p).Error; err != nil {
			return err
		}
		if len(p.Media) > 0 {
			if err := tx.Create(&p.Media).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *PropertyRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&models.Media{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Property{}, id).Error
	})
}

func (r *PropertyRepository) ExistsByTitle(title string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Property{}).Where("title = ?", title).Count(&count).Error
	return count > 0, err
}

func (r *PropertyRepository) ListByTitles(titles []string) ([]models.Property, error) {
	if len(titles) == 0 {
		return nil, nil
	}
	var items []models.Property
	err := withMedia(r.db).Where("title IN ?", titles).Find(&items).Error
	return items, err
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
