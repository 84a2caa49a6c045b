package window

import (
	"errors"
	"fmt"
)

var (
	errMismatchedLength = errors.New("samples and coefficients must have same length")
	errUnknownType      = errors.New("unknown window type")
)

func validateFade(t Type, length int) error {
	if length < 0 {
		return fmt.Errorf("fade length must be >= 0: %d", length)
	}
	switch t {
	case TypeRectangular, TypeHann, TypeTriangle, TypeCosine:
		return nil
	default:
		return fmt.Errorf("%w for fade: %v", errUnknownType, t)
	}
}
