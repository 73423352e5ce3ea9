package errors

import "errors"

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNoPartsFound      = errors.New("no parts found")
	ErrMalformedPart     = errors.New("part is too short to contain the index header")
	ErrDuplicateIndex    = errors.New("more than one part carries the same index")
	ErrIncompletePartSet = errors.New("part set is not contiguous, some parts are missing")
	ErrTooManyParts      = errors.New("part count exceeds the index header capacity")

	ErrShowUsage = errors.New("show usage")
)
