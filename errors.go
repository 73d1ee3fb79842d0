package qrstyle

import (
	"github.com/pkg/errors"

	"github.com/Mictilt/qrstyle/surface"
)

var (
	// ErrInvalidInput is returned when the render configuration cannot be
	// used, e.g. empty content, content exceeding the symbol capacity, a
	// negative margin, a pixel width above MaxPixelWidth or a version outside
	// 1..40.
	ErrInvalidInput = errors.New("invalid input")

	// ErrResourceUnavailable is returned when the target surface cannot be
	// obtained. It is the same error as surface.ErrUnavailable.
	ErrResourceUnavailable = surface.ErrUnavailable
)

// invalidf wraps ErrInvalidInput with a formatted message.
func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidInput, format, args...)
}
