package httpx

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sizedBook struct {
	Name      string `json:"name"`
	Summary   string `json:"summary"`
	PageCount int    `json:"pageCount"`
}

// decodingHandler decodes the body the way the book handlers do and
// echoes the name back.
func decodingHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in sizedBook
		if err := DecodeJSON(r.Body, &in); err != nil {
			if IsBodyTooLarge(err) {
				JSONBodyTooLarge(w)
				return
			}
			JSONFail(w, http.StatusBadRequest, "Payload tidak valid")
			return
		}
		JSONSuccessCreated(w, "", map[string]string{"name": in.Name})
	})
}

func bookPayload(t *testing.T, summaryLen int) []byte {
	t.Helper()
	body, err := json.Marshal(sizedBook{Name: "Buku A", Summary: strings.Repeat("x", summaryLen), PageCount: 100})
	require.NoError(t, err)
	return body
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	const limit = 256

	tests := []struct {
		name       string
		summaryLen int
		chunked    bool
		wantCode   int
		wantStatus string
	}{
		{name: "small book", summaryLen: 16, wantCode: http.StatusCreated, wantStatus: "success"},
		{name: "declared length over limit", summaryLen: 1024, wantCode: http.StatusRequestEntityTooLarge, wantStatus: "fail"},
		{name: "chunked under limit", summaryLen: 16, chunked: true, wantCode: http.StatusCreated, wantStatus: "success"},
		{name: "chunked over limit", summaryLen: 1024, chunked: true, wantCode: http.StatusRequestEntityTooLarge, wantStatus: "fail"},
	}

	handler := RequestSizeLimitMiddleware(limit)(decodingHandler())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/books", bytes.NewReader(bookPayload(t, tt.summaryLen)))
			if tt.chunked {
				r.ContentLength = -1
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.wantCode, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, tt.wantStatus, body["status"])
			if tt.wantCode == http.StatusRequestEntityTooLarge {
				assert.Equal(t, "Payload terlalu besar", body["message"])
			}
		})
	}
}

func TestRequestSizeLimitMiddleware_MalformedBodyUnderLimit(t *testing.T) {
	handler := RequestSizeLimitMiddleware(1024)(decodingHandler())

	r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(`{"name":`))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Payload tidak valid", decodeBody(t, w)["message"])
}

func TestIsBodyTooLarge(t *testing.T) {
	w := httptest.NewRecorder()
	limited := http.MaxBytesReader(w, http.NoBody, 0)
	_, err := limited.Read(make([]byte, 1))
	assert.False(t, IsBodyTooLarge(err))

	limited = http.MaxBytesReader(w, io.NopCloser(bytes.NewReader([]byte(`{"name":"Buku A"}`))), 4)
	err = DecodeJSON(limited, &sizedBook{})
	assert.True(t, IsBodyTooLarge(err))
	assert.False(t, IsBodyTooLarge(DecodeJSON(strings.NewReader("{"), &sizedBook{})))
}
