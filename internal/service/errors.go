package service

import (
	"errors"
	"fmt"
)

// ErrRepositoryUnavailable marks any failure to reach or query the store.
// Callers keep their previous state and surface a notice.
var ErrRepositoryUnavailable = errors.New("repository unavailable")

func storeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrRepositoryUnavailable, err)
}
