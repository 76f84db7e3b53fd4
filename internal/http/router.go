package http

import (
	"net/http"

	"bookshelf/internal/book"
)

// NewRouter registers the book routes and the health check.
func NewRouter(catalog book.Catalog) *http.ServeMux {
	books := NewBookHandler(catalog)
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", books.Health)

	router.HandleFunc("POST /books", books.Create)
	router.HandleFunc("GET /books", books.List)
	router.HandleFunc("GET /books/{bookId}", books.Get)
	router.HandleFunc("PUT /books/{bookId}", books.Update)
	router.HandleFunc("DELETE /books/{bookId}", books.Delete)

	return router
}
