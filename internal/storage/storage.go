// Package storage provides the durable slot: a single named entry in a
// local key-value store that survives restarts. The session store
// mirrors the signed-in user into it.
package storage

// Slot is a single durable value. There is no schema versioning; a
// value that fails to parse upstream is treated as absent, never fatal.
type Slot interface {
	// Read returns the stored bytes, or ErrNotFound when the slot is
	// empty.
	Read() ([]byte, error)

	// Write replaces the slot's contents.
	Write(data []byte) error

	// Erase empties the slot. Erasing an already-empty slot is a no-op.
	Erase() error
}
