package models

import (
	"fmt"
	"strings"
	"time"
)

// Field names of the productos collection.
const (
	FieldCategory    = "categoria"
	FieldStock       = "stock"
	FieldDescription = "descripcion"
	FieldVisible     = "visible"
	FieldImageURL    = "imagenUrl"
)

// Product is a catalogue entry decoded from a productos record.
type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"nombre"`
	Category    string     `json:"categoria"`
	Price       float64    `json:"precio"`
	Stock       *float64   `json:"stock,omitempty"`
	Description string     `json:"descripcion"`
	Visible     bool       `json:"visible"`
	ImageURL    string     `json:"imagenUrl"`
	CreatedAt   *time.Time `json:"creadoEn,omitempty"`
}

// ProductFromRecord decodes a productos record. Only an explicit false hides a
// product.
func ProductFromRecord(r Record) Product {
	p := Product{
		ID:          r.ID,
		Name:        r.String(FieldName),
		Category:    r.String(FieldCategory),
		Description: r.String(FieldDescription),
		ImageURL:    r.String(FieldImageURL),
		Visible:     true,
	}
	if v, ok := r.Number(FieldPrice); ok {
		p.Price = v
	}
	if v, ok := r.Number(FieldStock); ok {
		p.Stock = &v
	}
	if v, ok := r.Bool(FieldVisible); ok {
		p.Visible = v
	}
	if t, ok := r.Time(FieldCreatedAt); ok {
		p.CreatedAt = &t
	}
	return p
}

// ProductInput is the payload of a product create or update.
type ProductInput struct {
	Name        string   `json:"nombre"`
	Category    string   `json:"categoria"`
	Price       *float64 `json:"precio"`
	Stock       *float64 `json:"stock"`
	Description string   `json:"descripcion"`
	Visible     *bool    `json:"visible"`
	ImageURL    string   `json:"imagenUrl"`
}

// Validate checks the fields the admin form marks as required.
func (in ProductInput) Validate() error {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, FieldName)
	}
	if strings.TrimSpace(in.Category) == "" {
		missing = append(missing, FieldCategory)
	}
	if in.Price == nil {
		missing = append(missing, FieldPrice)
	}
	if in.Stock == nil {
		missing = append(missing, FieldStock)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidProduct, strings.Join(missing, ", "))
	}
	return nil
}

// Fields returns the document written for the input. Creations also set the
// creation time, an empty image url when none was given and visible unless
// told otherwise. Updates leave visibility alone when it is not given.
func (in ProductInput) Fields(create bool) map[string]any {
	fields := map[string]any{
		FieldName:        strings.TrimSpace(in.Name),
		FieldCategory:    strings.TrimSpace(in.Category),
		FieldDescription: strings.TrimSpace(in.Description),
		FieldUpdatedAt:   ServerTimestamp,
	}
	switch {
	case in.Visible != nil:
		fields[FieldVisible] = *in.Visible
	case create:
		fields[FieldVisible] = true
	}
	if in.Price != nil {
		fields[FieldPrice] = *in.Price
	}
	if in.Stock != nil {
		fields[FieldStock] = *in.Stock
	}
	if in.ImageURL != "" {
		fields[FieldImageURL] = in.ImageURL
	}
	if create {
		if _, ok := fields[FieldImageURL]; !ok {
			fields[FieldImageURL] = ""
		}
		fields[FieldCreatedAt] = ServerTimestamp
	}
	return fields
}
