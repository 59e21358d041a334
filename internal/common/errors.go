package common

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the parent of every data-quality error raised on purpose
	// by this package.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyDocument is returned by ReadYAML when the document is empty,
	// null or an empty mapping.
	ErrEmptyDocument = fmt.Errorf("%w: yaml file is empty", ErrValidation)

	// ErrNotMapping is returned by ReadYAML when the document root is not a mapping.
	ErrNotMapping = fmt.Errorf("%w: yaml root is not a mapping", ErrValidation)

	// ErrInvalidArgument signals a programming error: an argument failed its
	// precondition before any I/O happened.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrKeyNotFound is returned by Box lookups for a missing key.
	ErrKeyNotFound = errors.New("key not found")
)
