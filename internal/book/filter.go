package book

import "strings"

// Filter selects books for Query. Zero values leave a field unfiltered.
type Filter struct {
	Name     string
	Reading  *bool
	Finished *bool
}

// ParseFlag reads a "1"/"0" query value. Anything else is unset.
func ParseFlag(s string) *bool {
	switch s {
	case "1":
		v := true
		return &v
	case "0":
		v := false
		return &v
	default:
		return nil
	}
}

func (f Filter) match(b *Book) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(b.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Reading != nil && b.Reading != *f.Reading {
		return false
	}
	if f.Finished != nil && b.Finished != *f.Finished {
		return false
	}
	return true
}
