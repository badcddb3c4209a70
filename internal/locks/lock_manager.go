package locks

import (
	"context"
	"errors"
)

// Manager serializes operations targeting the same task record. Acquire
// blocks out a second writer for the record key until Release; the engine
// holds the lock for the full span of one atomic operation.
type Manager interface {
	Acquire(ctx context.Context, recordKey string) error

	Release(ctx context.Context, recordKey string) error
}

var ErrRecordBusy = errors.New("record is locked by another operation")
