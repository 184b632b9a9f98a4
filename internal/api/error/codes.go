package error

import "net/http"

type ErrorCode string

const (
	UnknownError         ErrorCode = "unknown_error"
	InternalServerError  ErrorCode = "internal_server_error"
	BadRequest           ErrorCode = "bad_request"
	ValidationFailed     ErrorCode = "validation_failed"
	RecipeNotFound       ErrorCode = "recipe_not_found"
	StorageQuotaExceeded ErrorCode = "storage_quota_exceeded"
	StorageFailure       ErrorCode = "storage_failure"
	ImageFetchFailed     ErrorCode = "image_fetch_failed"
	Offline              ErrorCode = "offline"
)

var errorCodeToStatusCode = map[ErrorCode]int{
	UnknownError:         0, // No error code - unknown
	InternalServerError:  http.StatusInternalServerError,
	BadRequest:           http.StatusBadRequest,
	ValidationFailed:     http.StatusUnprocessableEntity,
	RecipeNotFound:       http.StatusNotFound,
	StorageQuotaExceeded: http.StatusInsufficientStorage,
	StorageFailure:       http.StatusInternalServerError,
	ImageFetchFailed:     http.StatusBadGateway,
	Offline:              http.StatusServiceUnavailable,
}

func (ec ErrorCode) StatusCode() int {
	return errorCodeToStatusCode[ec]
}

func (ec ErrorCode) String() string {
	return string(ec)
}
