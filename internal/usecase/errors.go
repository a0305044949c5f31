package usecase

import "errors"

// Error classes returned by the services. Wrap with fmt.Errorf("%w: ...")
// and classify with errors.Is.
var (
	// ErrValidation: malformed seat code, out-of-range discount, bad day or class.
	ErrValidation = errors.New("validation failed")
	// ErrConflict: seat already booked in the resolved pool.
	ErrConflict = errors.New("seat already booked")
	// ErrNotFound: unknown ticket id, movie or show.
	ErrNotFound = errors.New("not found")
)
