// Package domain defines the persistence models for the library catalog.
// These types are mapped with GORM and form the core data layer of the
// dictionary backend's bookshelf feature.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// BookDateLayout is the wire format of Book.DateAdd, a legacy fixed layout
// kept for compatibility with existing catalog exports:
// "2006-01-02-15:04:05-0700" rendered in UTC.
const BookDateLayout = "2006-01-02-15:04:05-0700"

// Book represents one catalog record. The JSON field names are the legacy
// Indonesian catalog vocabulary and must not change: existing clients and
// exports depend on them.
//
// Fields:
//   - PK: six-letter random identifier, the legacy primary key (char(6)).
//   - DateAdd: creation instant in the fixed BookDateLayout format.
//   - Author / Title: free-text catalog fields.
//   - Year: four-digit publication year, stored as text.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker (retains row for audit/history).
type Book struct {
	PK        string         `json:"pk"       gorm:"type:char(6);primaryKey"`
	DateAdd   string         `json:"date_add" gorm:"type:varchar(32);not null"`
	Author    string         `json:"penulis"  gorm:"type:varchar(255);not null"`
	Title     string         `json:"judul"    gorm:"type:varchar(255);not null"`
	Year      string         `json:"tahun"    gorm:"type:varchar(8);not null"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `json:"-"        gorm:"index"`
}

// TableName returns the database table name for Book.
func (Book) TableName() string { return "books" }

// FormatBookDate renders t as a DateAdd value.
func FormatBookDate(t time.Time) string {
	return t.UTC().Format(BookDateLayout)
}
