package models

import "time"

// Page is one contiguous slice of a Snapshot. Number is 1-based.
type Page struct {
	Number       int      `json:"page"`
	Size         int      `json:"pageSize"`
	TotalPages   int      `json:"totalPages"`
	TotalRecords int      `json:"totalRecords"`
	Records      []Record `json:"-"`
	Empty        bool     `json:"empty"`
}

// View is what a render callback receives after each pipeline run.
type View struct {
	Stats      AggregateStats    `json:"stats"`
	Page       Page              `json:"page"`
	Bookings   []Booking         `json:"reservas"`
	Empty      bool              `json:"empty"`
	Pending    map[string]Status `json:"pending,omitempty"`
	Version    uint64            `json:"version"`
	RenderedAt time.Time         `json:"renderedAt"`
}

// ProductList is what the products render callback receives.
type ProductList struct {
	Products []Product `json:"productos"`
	Empty    bool      `json:"empty"`
	Version  uint64    `json:"version"`
}
