package errors

import "net/http"

// ErrNotAdmin is part of the declared error vocabulary but is never
// returned by any operation.
var ErrNotAdmin = &Exception{
	Message:    "the caller is not the admin",
	StatusCode: http.StatusForbidden,
}
