package wire

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is matched by every *LengthError.
	ErrLengthMismatch = errors.New("buffer length mismatch")
	// ErrValueType is returned when a value handed to a codec has the wrong Go type.
	ErrValueType = errors.New("value type mismatch")
)

// LengthError reports a buffer whose length differs from the record's fixed length.
type LengthError struct {
	Record string
	Want   int
	Got    int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: buffer is %d bytes, want exactly %d", e.Record, e.Got, e.Want)
}

func (e *LengthError) Is(target error) bool {
	return target == ErrLengthMismatch
}

// CheckLen returns a *LengthError unless got == want.
func CheckLen(record string, want, got int) error {
	if got == want {
		return nil
	}
	return &LengthError{Record: record, Want: want, Got: got}
}

func valueTypeError(want, got any) error {
	return fmt.Errorf("%w: want %T, got %T", ErrValueType, want, got)
}
