package errors

import "net/http"

var ErrTaskAlreadyExists = &Exception{
	Message:    "a task already exists at this address",
	StatusCode: http.StatusConflict,
}
