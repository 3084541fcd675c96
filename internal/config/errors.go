package config

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	// ErrNoBodies indicates a configuration without planets.
	ErrNoBodies = errors.New("config: no bodies configured")

	// ErrMissingName indicates a body without a name.
	ErrMissingName = errors.New("config: body has no name")

	// ErrDuplicateBody indicates two bodies share a name.
	ErrDuplicateBody = errors.New("config: duplicate body name")

	// ErrInvalidSize indicates a non-positive visual size.
	ErrInvalidSize = errors.New("config: size must be positive")

	// ErrInvalidRadius indicates a non-positive orbital radius.
	ErrInvalidRadius = errors.New("config: orbital radius must be positive")

	// ErrInsideSun indicates an orbit that lies inside the sun.
	ErrInsideSun = errors.New("config: orbit lies inside the sun")

	// ErrInvalidSpeed indicates an initial speed outside the slider range.
	ErrInvalidSpeed = errors.New("config: speed outside control range")

	// ErrInvalidRange indicates a malformed slider range.
	ErrInvalidRange = errors.New("config: invalid control range")

	// ErrInvalidFPS indicates a non-positive frame rate.
	ErrInvalidFPS = errors.New("config: fps must be positive")

	// ErrInvalidCamera indicates an unusable projection.
	ErrInvalidCamera = errors.New("config: invalid camera")

	// ErrInvalidStars indicates a negative star count.
	ErrInvalidStars = errors.New("config: star count must not be negative")

	// ErrUnknownPreset indicates a preset name that does not exist.
	ErrUnknownPreset = errors.New("config: unknown preset")
)

// BodyError wraps a validation error with the offending body.
type BodyError struct {
	Index int
	Name  string
	Err   error
}

func (e *BodyError) Error() string {
	return fmt.Sprintf("body %d (%q): %v", e.Index, e.Name, e.Err)
}

func (e *BodyError) Unwrap() error {
	return e.Err
}
