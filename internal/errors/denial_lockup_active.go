package errors

import "net/http"

var ErrDenialLockupActive = &Exception{
	Message:    "denial lockup period is still active",
	StatusCode: http.StatusLocked,
}
