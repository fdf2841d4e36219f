package market

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSegment matches any *UnknownSegmentError via errors.Is.
	ErrUnknownSegment = errors.New("unknown segment")
	ErrInvalidSegment = errors.New("invalid segment")
)

// UnknownSegmentError reports a segment name that is not in the catalog.
type UnknownSegmentError struct {
	Name string
}

func (e *UnknownSegmentError) Error() string {
	return fmt.Sprintf("unknown segment %q", e.Name)
}

func (e *UnknownSegmentError) Is(target error) bool {
	return target == ErrUnknownSegment
}
