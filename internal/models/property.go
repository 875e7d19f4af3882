package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringList is stored as a JSON array in a text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for StringList")
	}
}

func (l StringList) GormDataType() string { return "text" }

type Property struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Slug         string     `gorm:"uniqueIndex;size:160;not null" json:"slug"`
	Title        string     `gorm:"size:120;not null" json:"title"`
	Location     string     `gorm:"size:160;not null" json:"location"`
	Description  string     `gorm:"type:text;not null" json:"description"`
	Price        float64    `gorm:"not null" json:"price"`
	PropertyType string     `gorm:"size:20;not null;default:'other'" json:"propertyType"`
	Status       string     `gorm:"size:20;not null;default:'draft';index" json:"status"`
	Bedrooms     int        `gorm:"default:0" json:"bedrooms"`
	Bathrooms    int        `gorm:"default:0" json:"bathrooms"`
	Toilets      int        `gorm:"default:0" json:"toilets"`
	Kitchens     int        `gorm:"default:0" json:"kitchens"`
	AreaSqm      float64    `gorm:"default:0" json:"areaSqm"`
	Features     StringList `gorm:"type:text" json:"features"`
	CreatedByID  uint       `gorm:"not null;index" json:"createdBy"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`

	Media     []Media   `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"media"`
	CreatedBy AdminUser `gorm:"foreignKey:CreatedByID" json:"-"`
}

func (Property) TableName() string { return "properties" }

// Media is owned entirely by its parent property: replaced wholesale on
// update and cascade-deleted with the property. PublicID, when set, is
// the only key for cleaning up the remote blob.
type Media struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	PropertyID uint      `gorm:"not null;index" json:"-"`
	Kind       string    `gorm:"size:10;not null" json:"kind"`
	URL        string    `gorm:"size:512;not null" json:"url"`
	PublicID   string    `gorm:"size:255;default:''" json:"publicId"`
	Filename   string    `gorm:"size:255;default:''" json:"filename"`
	MimeType   string    `gorm:"size:100;not null" json:"mimeType"`
	Size       int64     `gorm:"not null;default:0" json:"size"`
	SortOrder  int       `gorm:"default:0" json:"-"`
	CreatedAt  time.Time `json:"-"`
}

func (Media) TableName() string { return "property_media" }

// CleanupKey identifies a media item in a removal request: the blob
// public ID when present, otherwise the original filename (legacy rows
// imported without a public ID).
func (m Media) CleanupKey() string {
	if m.PublicID != "" {
		return m.PublicID
	}
	return m.Filename
}

func (p *Property) String() string {
	return fmt.Sprintf("Property(%d %q)", p.ID, p.Slug)
}
