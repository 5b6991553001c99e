package linechart

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDataset  = errors.New("invalid dataset")
	ErrInvalidSurface  = errors.New("invalid surface")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotImplemented  = errors.New("not implemented")
)

// ArgumentError reports every field of a settings request that failed
// validation. It matches ErrInvalidArgument with errors.Is.
type ArgumentError struct {
	Fields []string
	Reason string
}

func (e ArgumentError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: %s", ErrInvalidArgument, e.Reason)
	}
	return fmt.Sprintf("%s: %s (%s)", ErrInvalidArgument, e.Reason, strings.Join(e.Fields, ", "))
}

func (e ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func argumentError(reason string, fields ...string) error {
	return ArgumentError{
		Fields: fields,
		Reason: reason,
	}
}

func datasetError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDataset, fmt.Sprintf(format, args...))
}

func surfaceError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSurface, fmt.Sprintf(format, args...))
}
