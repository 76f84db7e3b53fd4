package book

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want error
	}{
		{"valid", Input{Name: "A", PageCount: 10, ReadPage: 5}, nil},
		{"valid finished", Input{Name: "A", PageCount: 10, ReadPage: 10}, nil},
		{"valid without pages", Input{Name: "A"}, nil},
		{"missing name", Input{PageCount: 10, ReadPage: 5}, ErrMissingName},
		{"missing name wins over pages", Input{PageCount: 10, ReadPage: 50}, ErrMissingName},
		{"readPage exceeds pageCount", Input{Name: "A", PageCount: 50, ReadPage: 60}, ErrReadPageExceedsPageCount},
		{"exceeds wins over negative pageCount", Input{Name: "A", PageCount: -1, ReadPage: 0}, ErrReadPageExceedsPageCount},
		{"negative readPage", Input{Name: "A", PageCount: 10, ReadPage: -1}, ErrNegativePage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidationError_Is(t *testing.T) {
	wrapped := fmt.Errorf("add book: %w", ErrMissingName)
	assert.ErrorIs(t, wrapped, ErrMissingName)
	assert.NotErrorIs(t, wrapped, ErrReadPageExceedsPageCount)
	assert.NotErrorIs(t, ErrMissingName, ErrNotFound)
	assert.Equal(t, "missing name", ErrMissingName.Error())
}
