package domain

import (
	"regexp"
	"strings"

	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

var (
	candidateLinePattern  = regexp.MustCompile(`^Duplicate candidate: (.+) \(hash ([0-9a-fA-F]+)\) found in:$`)
	occurrenceLinePattern = regexp.MustCompile(`^  - (.+:\d+-\d+)$`)
)

// ParseScanOutput recovers candidates from the textual scan output. Only the
// exact header and occurrence line shapes are recognised; any other line,
// including log noise, ends the current group and is otherwise ignored.
func ParseScanOutput(text string) []m.Candidate {
	var (
		candidates []m.Candidate
		current    *m.Candidate
	)

	flush := func() {
		if current != nil {
			candidates = append(candidates, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")

		if match := candidateLinePattern.FindStringSubmatch(line); match != nil {
			flush()

			current = &m.Candidate{Function: match[1], Occurrences: []string{}}

			continue
		}

		if current != nil {
			if match := occurrenceLinePattern.FindStringSubmatch(line); match != nil {
				current.Occurrences = append(current.Occurrences, match[1])
				continue
			}
		}

		flush()
	}

	flush()

	return candidates
}

// ScanOutputReportsNoDuplicates reports whether text contains the explicit
// no-duplicates message.
func ScanOutputReportsNoDuplicates(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == m.ScanNoDuplicates {
			return true
		}
	}

	return false
}
