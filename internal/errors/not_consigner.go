package errors

import "net/http"

var ErrNotConsigner = &Exception{
	Message:    "the caller is not the consigner of this task",
	StatusCode: http.StatusForbidden,
}
