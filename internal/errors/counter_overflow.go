package errors

import "net/http"

var ErrCounterOverflow = &Exception{
	Message:    "counter overflow",
	StatusCode: http.StatusInternalServerError,
}
