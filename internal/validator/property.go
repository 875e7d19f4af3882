// Package validator turns loosely-typed multipart form fields into a
// typed property payload. It never touches storage: it either returns a
// complete payload or fails before any side effect happens.
package validator

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"ramahomes/internal/apperror"
	"ramahomes/internal/domain"
	"ramahomes/internal/models"
)

// PropertyPayload holds only the fields the caller explicitly provided
// (all of them after full validation). Nil means "leave unchanged".
type PropertyPayload struct {
	Title        *string
	Location     *string
	Description  *string
	Price        *float64
	Bedrooms     *int
	Bathrooms    *int
	Toilets      *int
	Kitchens     *int
	AreaSqm      *float64
	PropertyType *string
	Status       *string
	Features     models.StringList
	FeaturesSet  bool
}

// Apply copies the payload's present fields onto a property.
func (p *PropertyPayload) Apply(prop *models.Property) {
	if p.Title != nil {
		prop.Title = *p.Title
	}
	if p.Location != nil {
		prop.Location = *p.Location
	}
	if p.Description != nil {
		prop.Description = *p.Description
	}
	if p.Price != nil {
		prop.Price = *p.Price
	}
	if p.Bedrooms != nil {
		prop.Bedrooms = *p.Bedrooms
	}
	if p.Bathrooms != nil {
		prop.Bathrooms = *p.Bathrooms
	}
	if p.Toilets != nil {
		prop.Toilets = *p.Toilets
	}
	if p.Kitchens != nil {
		prop.Kitchens = *p.Kitchens
	}
	if p.AreaSqm != nil {
		prop.AreaSqm = *p.AreaSqm
	}
	if p.PropertyType != nil {
		prop.PropertyType = *p.PropertyType
	}
	if p.Status != nil {
		prop.Status = *p.Status
	}
	if p.FeaturesSet {
		prop.Features = p.Features
	}
}

type stringField struct {
	name   string
	maxLen int
	dest   func(*PropertyPayload, string)
}

var stringFields = []stringField{
	{"title", 120, func(p *PropertyPayload, v string) { p.Title = &v }},
	{"location", 160, func(p *PropertyPayload, v string) { p.Location = &v }},
	{"description", 4000, func(p *PropertyPayload, v string) { p.Description = &v }},
}

// NormalizePropertyInput validates raw form fields. With partial=false
// every required field must be present; with partial=true only provided
// fields are validated and returned.
func NormalizePropertyInput(form url.Values, partial bool) (*PropertyPayload, error) {
	payload := &PropertyPayload{}

	for _, f := range stringFields {
		if partial && !form.Has(f.name) {
			continue
		}
		value := strings.TrimSpace(form.Get(f.name))
		if value == "" {
			return nil, apperror.Newf(400, "%s is required.", f.name)
		}
		if utf8.RuneCountInString(value) > f.maxLen {
			return nil, apperror.Newf(400, "%s must be at most %d characters.", f.name, f.maxLen)
		}
		f.dest(payload, value)
	}

	price, err := parseNumber(form, "price")
	if err != nil {
		return nil, err
	}
	if !partial && price == nil {
		return nil, apperror.BadRequest("price is required.")
	}
	payload.Price = price

	intFields := []struct {
		name string
		dest **int
	}{
		{"bedrooms", &payload.Bedrooms},
		{"bathrooms", &payload.Bathrooms},
		{"toilets", &payload.Toilets},
		{"kitchens", &payload.Kitchens},
	}
	for _, f := range intFields {
		value, err := parseInt(form, f.name)
		if err != nil {
			return nil, err
		}
		*f.dest = value
	}

	area, err := parseNumber(form, "areaSqm")
	if err != nil {
		return nil, err
	}
	payload.AreaSqm = area

	if form.Has("propertyType") || !partial {
		propertyType := strings.ToLower(strings.TrimSpace(form.Get("propertyType")))
		if propertyType == "" {
			propertyType = "other"
		}
		if !domain.IsValidPropertyType(propertyType) {
			return nil, apperror.Newf(400, "propertyType must be one of: %s.", strings.Join(domain.PropertyTypes, ", "))
		}
		payload.PropertyType = &propertyType
	}

	if form.Has("status") || !partial {
		status := strings.ToLower(strings.TrimSpace(form.Get("status")))
		if status == "" {
			status = domain.StatusDraft
		}
		if !domain.IsValidStatus(status) {
			return nil, apperror.Newf(400, "status must be one of: %s.", strings.Join(domain.PropertyStatuses, ", "))
		}
		payload.Status = &status
	}

	if form.Has("features") {
		features := parseStringList(form["features"])
		payload.Features = features
		payload.FeaturesSet = true
	}

	return payload, nil
}

// NormalizeRemovedMedia parses the removal list of an update request.
func NormalizeRemovedMedia(form url.Values) []string {
	if !form.Has("removedMedia") {
		return nil
	}
	return parseStringList(form["removedMedia"])
}

// parseNumber returns nil only when the field is absent. A present
// value, blank included, must parse as a non-negative number.
func parseNumber(form url.Values, field string) (*float64, error) {
	if !form.Has(field) {
		return nil, nil
	}
	raw := strings.TrimSpace(form.Get(field))
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil || parsed < 0 {
		return nil, apperror.Newf(400, "%s must be a non-negative number.", field)
	}
	return &parsed, nil
}

func parseInt(form url.Values, field string) (*int, error) {
	parsed, err := parseNumber(form, field)
	if err != nil || parsed == nil {
		return nil, err
	}
	if *parsed != float64(int(*parsed)) {
		return nil, apperror.Newf(400, "%s must be a non-negative number.", field)
	}
	value := int(*parsed)
	return &value, nil
}

// parseStringList accepts repeated form values directly, or a single
// value that is first attempted as a JSON array, falling back to
// comma-splitting. Elements are trimmed and empties dropped.
func parseStringList(values []string) models.StringList {
	var raw []string
	switch {
	case len(values) > 1:
		raw = values
	case len(values) == 1:
		trimmed := strings.TrimSpace(values[0])
		if trimmed == "" {
			return models.StringList{}
		}
		var decoded []string
		if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
			raw = decoded
		} else {
			raw = strings.Split(trimmed, ",")
		}
	default:
		return models.StringList{}
	}

	out := models.StringList{}
	for _, item := range raw {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
