package errors

import "net/http"

var ErrAccountNotFound = &Exception{
	Message:    "account not found",
	StatusCode: http.StatusNotFound,
}
