package models

import "strings"

// NormalizeName lower-cases and trims a reference name or header. Every
// place that joins or dedupes by name must go through this, or lookups
// against the seeded rows silently miss.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Emotion is a seeded reference row. Names and headers are stored trimmed and
// lower-cased so that daily entries can join against them by name.
type Emotion struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Header     string `gorm:"size:255;not null" json:"header"`
	Name       string `gorm:"size:255;not null;uniqueIndex" json:"name"`
	IsPositive bool   `gorm:"not null" json:"is_positive"`
}

// Need is a seeded reference row, normalized the same way as Emotion.
type Need struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Header string `gorm:"size:255;not null" json:"header"`
	Name   string `gorm:"size:255;not null;uniqueIndex" json:"name"`
}
