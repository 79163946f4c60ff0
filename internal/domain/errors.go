package domain

import "errors"

var (
	// ErrDuplicatesFound signals that a scan found at least one duplicate
	// group. It is a result, not a failure of the tool.
	ErrDuplicatesFound = errors.New("duplicate candidates found")

	// ErrMalformedOccurrence is returned when an occurrence string does not
	// have the <path>:<start>-<end> shape.
	ErrMalformedOccurrence = errors.New("malformed occurrence")

	// ErrMalformedReport is returned after planning when one or more report
	// records had to be skipped.
	ErrMalformedReport = errors.New("report contains malformed records")

	// ErrRootNotFound is returned when the scan root is missing or not a directory.
	ErrRootNotFound = errors.New("scan root not found")
)
