package storage

import "errors"

// ErrNotFound is returned by Slot.Read when the slot holds no value.
var ErrNotFound = errors.New("storage: slot is empty")
