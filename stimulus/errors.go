package stimulus

import (
	"errors"
	"fmt"
)

// Errors returned by stimulus operations. Failed operations leave the
// receiver unchanged.
var (
	ErrInvalidParameter     = errors.New("stimulus: invalid parameter")
	ErrIncompatibleStimulus = errors.New("stimulus: incompatible stimuli")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameter}, args...)...)
}

// wrapInvalid tags a lower-level validation error as ErrInvalidParameter
// while keeping the original in the chain.
func wrapInvalid(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidParameter, op, err)
}
