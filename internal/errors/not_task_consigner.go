package errors

import "net/http"

var ErrNotTaskConsigner = &Exception{
	Message:    "the caller is not the task consigner",
	StatusCode: http.StatusForbidden,
}
