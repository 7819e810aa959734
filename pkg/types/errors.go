package types

import "errors"

// Record and entity errors.
var (
	ErrUnknownKind   = errors.New("unrecognized collectible kind")
	ErrInvalidRecord = errors.New("invalid record")
	ErrKindMismatch  = errors.New("comparing different kinds of collectibles")
	ErrOutOfStock    = errors.New("item is out of stock")
)

// Store errors.
var (
	ErrNotFound       = errors.New("entity not found")
	ErrDuplicate      = errors.New("entity already exists")
	ErrInvalidID      = errors.New("invalid customer ID")
	ErrUnknownCommand = errors.New("unrecognized command")
)
