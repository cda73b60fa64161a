package brandkit

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrInvalidConfig is wrapped by every *ConfigError.
	ErrInvalidConfig = errors.New("brandkit: invalid configuration")

	// ErrInvalidDimensions is returned when a raster is requested with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("brandkit: invalid dimensions")

	// ErrInvalidStops is returned for gradient stops that do not cover [0, 1]
	// in strictly increasing order.
	ErrInvalidStops = errors.New("brandkit: invalid gradient stops")

	// ErrUnknownColor is returned when a palette names a colour outside the
	// fixed set.
	ErrUnknownColor = errors.New("brandkit: unknown palette colour")

	// ErrNoFonts is returned when text is drawn without a Fonts value.
	ErrNoFonts = errors.New("brandkit: no fonts")
)

// ConfigError reports a configuration problem found before any rendering.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("brandkit: invalid configuration: %s: %s", e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidConfig) hold.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
