package errors

import "net/http"

var ErrCannotReclaimFunds = &Exception{
	Message:    "funds cannot be reclaimed yet",
	StatusCode: http.StatusConflict,
}
