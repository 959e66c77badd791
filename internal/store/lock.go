package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 100 * time.Millisecond

// ErrLocked is returned when another process holds the writer lock.
var ErrLocked = errors.New("database is locked by another imdbooo process")

// WriterLock is an exclusive file lock that serializes writers across
// processes sharing one database.
type WriterLock struct {
	lock *flock.Flock
}

// AcquireWriterLock waits for the lock at path until ctx is done.
func AcquireWriterLock(ctx context.Context, path string) (*WriterLock, error) {
	fl := flock.New(path)
	ok, err := fl.TryLockContext(ensureContext(ctx), lockRetryDelay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("%w: %s", ErrLocked, path)
		}
		return nil, fmt.Errorf("acquire writer lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	return &WriterLock{lock: fl}, nil
}

// Path returns the lock file path.
func (l *WriterLock) Path() string {
	if l == nil || l.lock == nil {
		return ""
	}
	return l.lock.Path()
}

// Release unlocks the file. It is safe to call more than once.
func (l *WriterLock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release writer lock: %w", err)
	}
	return nil
}
