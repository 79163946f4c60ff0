package domain

import (
	"fmt"
	"regexp"
	"strconv"

	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

// The path part is greedy so paths containing ':' still split on the last one.
var occurrencePattern = regexp.MustCompile(`^(.+):(\d+)-(\d+)$`)

// ParseOccurrence parses "<path>:<start>-<end>".
func ParseOccurrence(s string) (m.Occurrence, error) {
	match := occurrencePattern.FindStringSubmatch(s)
	if match == nil {
		return m.Occurrence{}, fmt.Errorf("%w: %q", ErrMalformedOccurrence, s)
	}

	start, err := strconv.Atoi(match[2])
	if err != nil {
		return m.Occurrence{}, fmt.Errorf("%w: start line in %q: %w", ErrMalformedOccurrence, s, err)
	}

	end, err := strconv.Atoi(match[3])
	if err != nil {
		return m.Occurrence{}, fmt.Errorf("%w: end line in %q: %w", ErrMalformedOccurrence, s, err)
	}

	if start < 1 || end < start {
		return m.Occurrence{}, fmt.Errorf("%w: invalid line range in %q", ErrMalformedOccurrence, s)
	}

	return m.Occurrence{Path: m.Path(match[1]), StartLine: start, EndLine: end}, nil
}
