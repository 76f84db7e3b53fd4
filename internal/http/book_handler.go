package http

import (
	"errors"
	"net/http"

	"bookshelf/internal/book"
	"bookshelf/internal/httpx"
	"bookshelf/internal/logger"
)

const (
	msgAdded   = "Buku berhasil ditambahkan"
	msgUpdated = "Buku berhasil diperbarui"
	msgDeleted = "Buku berhasil dihapus"

	msgNotFound       = "Buku tidak ditemukan"
	msgUpdateNotFound = "Gagal memperbarui buku. Id tidak ditemukan"
	msgDeleteNotFound = "Buku gagal dihapus. Id tidak ditemukan"

	prefixAdd    = "Gagal menambahkan buku. "
	prefixUpdate = "Gagal memperbarui buku. "
)

type BookHandler struct {
	catalog book.Catalog
}

func NewBookHandler(catalog book.Catalog) *BookHandler {
	return &BookHandler{catalog: catalog}
}

// validationMessage turns a store validation error into the user facing text.
func validationMessage(prefix string, err error) string {
	switch {
	case errors.Is(err, book.ErrMissingName):
		return prefix + "Mohon isi nama buku"
	case errors.Is(err, book.ErrReadPageExceedsPageCount):
		return prefix + "readPage tidak boleh lebih besar dari pageCount"
	case errors.Is(err, book.ErrNegativePage):
		return prefix + "pageCount dan readPage tidak boleh negatif"
	default:
		return prefix + err.Error()
	}
}

// @Summary Add a book
// @Tags books
// @Accept json
// @Produce json
// @Success 201 {object} httpx.Response
// @Failure 400 {object} httpx.Response
// @Failure 413 {object} httpx.Response
// @Router /books [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in book.Input
	if err := httpx.DecodeJSON(r.Body, &in); err != nil {
		if httpx.IsBodyTooLarge(err) {
			httpx.JSONBodyTooLarge(w)
			return
		}
		httpx.JSONFail(w, http.StatusBadRequest, prefixAdd+"Payload tidak valid")
		return
	}

	id, err := h.catalog.Add(in)
	if err != nil {
		var verr *book.ValidationError
		if errors.As(err, &verr) {
			httpx.JSONFail(w, http.StatusBadRequest, validationMessage(prefixAdd, err))
			return
		}
		logger.Error("add book failed", "request_id", httpx.RequestIDFrom(r), "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, "Buku gagal ditambahkan")
		return
	}

	logger.Debug("book added", "book_id", id)
	httpx.JSONSuccessCreated(w, msgAdded, map[string]string{"bookId": id})
}

// @Summary List books
// @Description Lists id, name and publisher of the books matching every given filter
// @Tags books
// @Produce json
// @Param name query string false "Case insensitive name substring"
// @Param reading query string false "1 or 0"
// @Param finished query string false "1 or 0"
// @Success 200 {object} httpx.Response
// @Router /books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := book.Filter{
		Name:     query.Get("name"),
		Reading:  book.ParseFlag(query.Get("reading")),
		Finished: book.ParseFlag(query.Get("finished")),
	}

	books := make([]book.Summary, 0)
	for item := range h.catalog.Query(filter) {
		books = append(books, item)
	}

	httpx.JSONSuccess(w, "", map[string]any{"books": books})
}

// @Summary Get book by id
// @Tags books
// @Produce json
// @Param bookId path string true "Book id"
// @Success 200 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /books/{bookId} [get]
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.catalog.Get(r.PathValue("bookId"))
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			httpx.JSONFail(w, http.StatusNotFound, msgNotFound)
			return
		}
		logger.Error("get book failed", "request_id", httpx.RequestIDFrom(r), "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, "Buku gagal ditampilkan")
		return
	}

	httpx.JSONSuccess(w, "", map[string]any{"book": b})
}

// @Summary Update book
// @Tags books
// @Accept json
// @Produce json
// @Param bookId path string true "Book id"
// @Success 200 {object} httpx.Response
// @Failure 400 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Failure 413 {object} httpx.Response
// @Router /books/{bookId} [put]
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in book.Input
	if err := httpx.DecodeJSON(r.Body, &in); err != nil {
		if httpx.IsBodyTooLarge(err) {
			httpx.JSONBodyTooLarge(w)
			return
		}
		httpx.JSONFail(w, http.StatusBadRequest, prefixUpdate+"Payload tidak valid")
		return
	}

	b, err := h.catalog.Update(r.PathValue("bookId"), in)
	if err != nil {
		var verr *book.ValidationError
		switch {
		case errors.As(err, &verr):
			httpx.JSONFail(w, http.StatusBadRequest, validationMessage(prefixUpdate, err))
		case errors.Is(err, book.ErrNotFound):
			httpx.JSONFail(w, http.StatusNotFound, msgUpdateNotFound)
		default:
			logger.Error("update book failed", "request_id", httpx.RequestIDFrom(r), "error", err)
			httpx.JSONError(w, http.StatusInternalServerError, "Buku gagal diperbarui")
		}
		return
	}

	httpx.JSONSuccess(w, msgUpdated, map[string]any{"book": b})
}

// @Summary Delete book
// @Tags books
// @Produce json
// @Param bookId path string true "Book id"
// @Success 200 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /books/{bookId} [delete]
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Delete(r.PathValue("bookId")); err != nil {
		if errors.Is(err, book.ErrNotFound) {
			httpx.JSONFail(w, http.StatusNotFound, msgDeleteNotFound)
			return
		}
		logger.Error("delete book failed", "request_id", httpx.RequestIDFrom(r), "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, "Buku gagal dihapus")
		return
	}

	httpx.JSONSuccess(w, msgDeleted, nil)
}

// @Summary Health check
// @Description Reports that the process serves requests and how many books it holds
// @Tags health
// @Produce json
// @Success 200 {object} httpx.Response
// @Router /healthz [get]
func (h *BookHandler) Health(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, "ok", map[string]int{"books": h.catalog.Len()})
}
