package errors

import "net/http"

var ErrTaskNotOpen = &Exception{
	Message:    "the task is not in an open state for this operation",
	StatusCode: http.StatusConflict,
}
