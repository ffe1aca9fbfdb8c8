package openenum

import (
	"fmt"

	"github.com/pkg/errors"
)

// UnknownValueError is returned when a closed family meets a value it does
// not declare.
type UnknownValueError struct {
	Family string
	Value  string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("%q is not a valid %s", e.Value, e.Family)
}

// IsUnknownValue reports whether err, or any error it wraps, is an
// UnknownValueError.
func IsUnknownValue(err error) bool {
	var target *UnknownValueError
	return errors.As(err, &target)
}
