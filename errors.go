package probingmap

import "github.com/cockroachdb/errors"

var (
	// ErrTableFull is returned by Insert when every slot of the key's probe
	// sequence is taken. With growth enabled it never fires.
	ErrTableFull = errors.New("probingmap: table is full")

	// ErrKeyNotFound is returned by Retrieve for absent keys.
	ErrKeyNotFound = errors.New("probingmap: key not found")
)
