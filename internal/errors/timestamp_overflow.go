package errors

import "net/http"

var ErrTimestampOverflow = &Exception{
	Message:    "timestamp calculation resulted in an overflow",
	StatusCode: http.StatusBadRequest,
}
