package errors

import "net/http"

var ErrTaskExpired = &Exception{
	Message:    "the task has already expired",
	StatusCode: http.StatusConflict,
}
