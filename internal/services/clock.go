package services

import "time"

// Clock supplies the wall-clock as unix seconds. Every lifecycle operation
// reads it exactly once and treats the value as fixed for all comparisons
// within that operation.
type Clock interface {
	Now() int64
}

type systemClock struct{}

func (systemClock) Now() int64 {
	return time.Now().Unix()
}

func SystemClock() Clock {
	return systemClock{}
}
