package errors

import "net/http"

var ErrRewardAmountTooLow = &Exception{
	Message:    "reward amount is too low",
	StatusCode: http.StatusBadRequest,
}
