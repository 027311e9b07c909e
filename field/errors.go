package field

import "errors"

// Every message is prefixed with "field:". Wrap with fmt.Errorf("ctx: %w", ErrX)
// when context helps; callers match with errors.Is.
var (
	// ErrInvalidParameter is returned when a size or count is not positive.
	// Constructors validate before allocating.
	ErrInvalidParameter = errors.New("field: invalid parameter")

	// ErrEmpty indicates FromRows received no rows or no columns.
	ErrEmpty = errors.New("field: input must have at least one row and one column")

	// ErrNonSquare indicates ragged rows or a row count different from the column count.
	ErrNonSquare = errors.New("field: grid must be square")

	// ErrOutOfRange indicates a coordinate outside [0, N) on either axis.
	ErrOutOfRange = errors.New("field: coordinate out of range")

	// ErrNaNInf indicates a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("field: NaN or Inf encountered")

	// ErrNilGrid indicates a nil *Grid was passed to an algorithm.
	ErrNilGrid = errors.New("field: grid is nil")
)
