package errors

import "net/http"

var ErrAlreadyInitialized = &Exception{
	Message:    "program configuration already initialized",
	StatusCode: http.StatusConflict,
}
