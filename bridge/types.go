package bridge

import (
	"context"
	"errors"
)

// Sentinel errors for external draw sources.
var (
	// ErrUnknownParameter indicates a parameter the source does not provide.
	ErrUnknownParameter = errors.New("bridge: unknown parameter")

	// ErrNoDraws indicates a parameter with zero draws.
	ErrNoDraws = errors.New("bridge: no draws")

	// ErrMalformedTrace indicates unreadable or non-finite trace data.
	ErrMalformedTrace = errors.New("bridge: malformed trace")

	// ErrNilSource indicates a nil Source.
	ErrNilSource = errors.New("bridge: source is nil")
)

// ChainColumn is the optional CSV column holding the chain id of each row.
const ChainColumn = "chain"

// Source yields posterior draws of a named parameter.
type Source interface {
	Draws(ctx context.Context, param string) ([]float64, error)
}
