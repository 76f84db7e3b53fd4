package book

import "iter"

//go:generate mockgen -destination=mocks/mock_catalog.go -package=mocks bookshelf/internal/book Catalog

// Catalog defines the contract the request layer uses to manage books.
type Catalog interface {
	Add(in Input) (string, error)
	Query(f Filter) iter.Seq[Summary]
	Get(id string) (Book, error)
	Update(id string, in Input) (Book, error)
	Delete(id string) error
	Len() int
}

var _ Catalog = (*Store)(nil)
