package element

import (
	"errors"
	"fmt"
)

// ErrUnexpectedToken is matched by every error caused by a token that cannot
// continue the grammar at its position.
var ErrUnexpectedToken = errors.New("unexpected token")

// disambiguationFailure is the outcome of a rejected trial parse. It never
// leaves this package.
type disambiguationFailure struct {
	name  string
	cause error
}

func (e *disambiguationFailure) Error() string {
	return fmt.Sprintf("%q does not open an element: %s", e.name, e.cause)
}

func (e *disambiguationFailure) Unwrap() error {
	return e.cause
}
