package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"

	jsoniter "github.com/json-iterator/go"

	"bookshelf/internal/book"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TestInput is a valid, unfinished book payload.
var TestInput = book.Input{
	Name:      "Buku A",
	Year:      2010.0,
	Author:    "John Doe",
	Summary:   "Lorem ipsum dolor sit amet",
	Publisher: "Dicoding Indonesia",
	PageCount: 100,
	ReadPage:  25,
	Reading:   false,
}

// NewRequest creates a new HTTP request for testing. A string body is sent
// as is, anything else is JSON encoded.
func NewRequest(method, path string, body any) *http.Request {
	var bodyBytes []byte
	switch v := body.(type) {
	case nil:
	case string:
		bodyBytes = []byte(v)
	default:
		bodyBytes, _ = json.Marshal(v)
	}

	if bodyBytes == nil {
		return httptest.NewRequest(method, path, nil)
	}
	r := httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]any
}

// Data returns the envelope's data object, or nil.
func (rr RecordResponse) Data() map[string]any {
	data, _ := rr.Body["data"].(map[string]any)
	return data
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]any
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// Do serves r on h and records the response.
func Do(h http.Handler, r *http.Request) RecordResponse {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return RecordHTTPResponse(w)
}
