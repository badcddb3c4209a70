package errors

import "net/http"

var ErrInsufficientFunds = &Exception{
	Message:    "account balance cannot fund the transfer",
	StatusCode: http.StatusConflict,
}
