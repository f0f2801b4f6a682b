package maybe

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidAccess is matched by every *InvalidAccessError.
var ErrInvalidAccess = errors.New("invalid access")

// InvalidAccessError reports a read of the payload of a side the result
// does not hold. It is the panic value of OkValue, ErrValue and friends.
type InvalidAccessError struct {
	Want State
	Have State
}

func (e *InvalidAccessError) Error() string {
	return fmt.Sprintf("maybe: %s value requested from %s result", e.Want, e.Have)
}

func (e *InvalidAccessError) Unwrap() error {
	return ErrInvalidAccess
}

func invalidAccess(want, have State) error {
	return errors.WithStack(&InvalidAccessError{Want: want, Have: have})
}

func mustHave(want, have State) {
	if want != have {
		panic(&InvalidAccessError{Want: want, Have: have})
	}
}
