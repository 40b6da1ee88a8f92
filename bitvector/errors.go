package bitvector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a position is not less than the vector length.
	ErrOutOfRange = errors.New("position out of range")

	// ErrSyntax is returned when Parse meets a byte other than '0' or '1'.
	ErrSyntax = errors.New("invalid bit string")
)

// ErrPositionOutOfRange reports the offending position and the vector length.
//
// It unwraps to ErrOutOfRange, so callers can test with errors.Is.
type ErrPositionOutOfRange struct {
	Pos uint64
	Len uint64
}

func (e *ErrPositionOutOfRange) Error() string {
	return fmt.Sprintf("%s: pos %d, len %d", ErrOutOfRange, e.Pos, e.Len)
}

func (e *ErrPositionOutOfRange) Unwrap() error { return ErrOutOfRange }

// ErrInvalidCharacter reports the first byte Parse could not interpret.
//
// It unwraps to ErrSyntax.
type ErrInvalidCharacter struct {
	Offset int
	Char   byte
}

func (e *ErrInvalidCharacter) Error() string {
	return fmt.Sprintf("%s: unexpected %q at offset %d", ErrSyntax, e.Char, e.Offset)
}

func (e *ErrInvalidCharacter) Unwrap() error { return ErrSyntax }
