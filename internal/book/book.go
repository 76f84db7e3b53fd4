package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no book has the requested id.
var ErrNotFound = errors.New("book not found")

// Book represents a stored catalog record.
type Book struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Year       any       `json:"year"`
	Author     string    `json:"author"`
	Summary    string    `json:"summary"`
	Publisher  string    `json:"publisher"`
	PageCount  int       `json:"pageCount"`
	ReadPage   int       `json:"readPage"`
	Finished   bool      `json:"finished"`
	Reading    bool      `json:"reading"`
	InsertedAt time.Time `json:"insertedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Input carries the caller-supplied attributes for Add and Update.
// Finished and the timestamps are owned by the store and have no input field.
// Year is stored as sent, number or string.
type Input struct {
	Name      string `json:"name" validate:"required"`
	Year      any    `json:"year"`
	Author    string `json:"author"`
	Summary   string `json:"summary"`
	Publisher string `json:"publisher"`
	PageCount int    `json:"pageCount" validate:"gte=0"`
	ReadPage  int    `json:"readPage" validate:"gte=0,ltefield=PageCount"`
	Reading   bool   `json:"reading"`
}

// Summary is the listing projection of a Book.
type Summary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

func (b Book) summary() Summary {
	return Summary{ID: b.ID, Name: b.Name, Publisher: b.Publisher}
}

// apply overwrites every mutable attribute and recomputes Finished.
func (b *Book) apply(in Input) {
	b.Name = in.Name
	b.Year = in.Year
	b.Author = in.Author
	b.Summary = in.Summary
	b.Publisher = in.Publisher
	b.PageCount = in.PageCount
	b.ReadPage = in.ReadPage
	b.Reading = in.Reading
	b.Finished = in.PageCount == in.ReadPage
}
