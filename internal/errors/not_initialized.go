package errors

import "net/http"

var ErrNotInitialized = &Exception{
	Message:    "program configuration not initialized",
	StatusCode: http.StatusConflict,
}
