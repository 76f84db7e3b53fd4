package httpx

import (
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"bookshelf/internal/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func JSONSuccess(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusOK, Response{Status: StatusSuccess, Message: message, Data: data})
}

func JSONSuccessCreated(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusCreated, Response{Status: StatusSuccess, Message: message, Data: data})
}

// JSONFail reports a caller-fixable failure such as a 400 or 404.
func JSONFail(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, Response{Status: StatusFail, Message: message})
}

// JSONError reports a server side failure.
func JSONError(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, Response{Status: StatusError, Message: message})
}

// DecodeJSON reads body to the end and unmarshals it into dst. Read errors
// such as *http.MaxBytesError are returned unchanged.
func DecodeJSON(body io.Reader, dst any) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

// IsBodyTooLarge reports whether err came from a body cut off by
// http.MaxBytesReader.
func IsBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// JSONBodyTooLarge answers a request whose body exceeded the size limit.
func JSONBodyTooLarge(w http.ResponseWriter) {
	JSONFail(w, http.StatusRequestEntityTooLarge, "Payload terlalu besar")
}
