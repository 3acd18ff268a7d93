package list

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is matched by every *IndexError.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError reports a page or carousel index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// CheckIndex returns an *IndexError unless 0 <= index < n.
func CheckIndex(index, n int) error {
	if index < 0 || index >= n {
		return &IndexError{Index: index, Len: n}
	}
	return nil
}
