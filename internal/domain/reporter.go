package domain

import (
	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

// BuildCandidates converts duplicate groups into report records, keeping
// group order and occurrence order. Groups with fewer than two occurrences
// are dropped.
func BuildCandidates(groups []m.DuplicateGroup) []m.Candidate {
	candidates := make([]m.Candidate, 0, len(groups))

	for _, group := range groups {
		if len(group.Occurrences) < 2 {
			continue
		}

		occurrences := make([]string, 0, len(group.Occurrences))
		for _, occ := range group.Occurrences {
			occurrences = append(occurrences, occ.String())
		}

		candidates = append(candidates, m.Candidate{
			Function:    group.Key.Name,
			Occurrences: occurrences,
		})
	}

	return candidates
}
