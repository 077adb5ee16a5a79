package models

import (
	"time"

	"gorm.io/datatypes"
)

// VisitorEntry is one cached key/value pair for a visitor session.
// Entries are unique per (visitor_id, cache_key).
type VisitorEntry struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	VisitorID string         `gorm:"size:64;uniqueIndex:idx_visitor_key;not null" json:"visitor_id"`
	CacheKey  string         `gorm:"size:64;uniqueIndex:idx_visitor_key;not null" json:"cache_key"`
	Value     datatypes.JSON `gorm:"type:json" json:"value"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// TableName returns the table name for visitor entries
func (VisitorEntry) TableName() string {
	return "visitor_entries"
}

// LocationRecord is the resolved geolocation cached for a visitor.
// Once cached it is never overwritten while still present.
type LocationRecord struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	Country    string    `json:"country"`
	CapturedAt time.Time `json:"captured_at"`
}

// Marker records when a session flag (submitted, fallback sent, CTA
// dismissed) was set.
type Marker struct {
	At time.Time `json:"at"`
}
