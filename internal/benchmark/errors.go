package benchmark

import "errors"

var (
	// ErrNoActors indicates an empty table.
	ErrNoActors = errors.New("benchmark: table has no actors")

	// ErrInvalidRate indicates a NaN, infinite or negative rate.
	ErrInvalidRate = errors.New("benchmark: rate must be a finite non-negative number")

	// ErrMissingCategory indicates an actor without one of the three rates.
	ErrMissingCategory = errors.New("benchmark: actor is missing a category")

	// ErrDuplicateActor indicates two rows with the same name.
	ErrDuplicateActor = errors.New("benchmark: duplicate actor")

	// ErrUnknownCategory indicates a category key outside credit/debit/qr.
	ErrUnknownCategory = errors.New("benchmark: unknown category")
)
