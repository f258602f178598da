package search

import "errors"

var (
	// ErrKeyOutOfRange is the panic value (wrapped) raised by fixed-capacity
	// seen spaces when a key falls outside their bounded domain.
	ErrKeyOutOfRange = errors.New("search: key out of range")

	// ErrTraceOverflow is the panic value (wrapped) raised when a Trace grows
	// beyond TraceCapacity.
	ErrTraceOverflow = errors.New("search: trace capacity exceeded")
)
