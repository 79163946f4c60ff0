package domain

import (
	"log/slog"
	"path"
	"sort"
	"strings"

	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

// PlanWarning describes a report record the planner had to skip.
type PlanWarning struct {
	Function   string
	Occurrence string
	Err        error
}

// Planner turns report records into a consolidation plan. It never touches
// source files.
type Planner interface {
	Plan(candidates []m.Candidate) (m.Plan, []PlanWarning)
}

type planner struct{}

// NewPlanner returns the path-depth / extension heuristic planner.
func NewPlanner() Planner {
	return &planner{}
}

func (p *planner) Plan(candidates []m.Candidate) (m.Plan, []PlanWarning) {
	var (
		plan     m.Plan
		warnings []PlanWarning
	)

	byPackage := map[m.PackageLabel]int{}

	for _, candidate := range candidates {
		if len(candidate.Occurrences) < 2 {
			slog.Debug("Skipping record with a single occurrence", "function", candidate.Function)
			continue
		}

		occurrences, warning := parseCandidateOccurrences(candidate)
		if warning != nil {
			slog.Warn("Skipping malformed report record",
				"function", warning.Function,
				"occurrence", warning.Occurrence,
				"error", warning.Err)

			warnings = append(warnings, *warning)

			continue
		}

		canonical := SelectCanonical(occurrences)
		label := ClassifyPackage(canonical.Path)

		entry := m.ConsolidationEntry{
			Function:    candidate.Function,
			Canonical:   canonical,
			Occurrences: occurrences,
			Package:     label,
		}

		idx, ok := byPackage[label]
		if !ok {
			idx = len(plan.Packages)
			byPackage[label] = idx
			plan.Packages = append(plan.Packages, m.PackagePlan{Package: label})
		}

		plan.Packages[idx].Entries = append(plan.Packages[idx].Entries, entry)
	}

	return plan, warnings
}

func parseCandidateOccurrences(candidate m.Candidate) ([]m.Occurrence, *PlanWarning) {
	occurrences := make([]m.Occurrence, 0, len(candidate.Occurrences))

	for _, raw := range candidate.Occurrences {
		occ, err := ParseOccurrence(raw)
		if err != nil {
			return nil, &PlanWarning{Function: candidate.Function, Occurrence: raw, Err: err}
		}

		occurrences = append(occurrences, occ)
	}

	return occurrences, nil
}

// SelectCanonical returns the occurrence with the fewest path separators.
// Ties keep the original order.
func SelectCanonical(occurrences []m.Occurrence) m.Occurrence {
	if len(occurrences) == 0 {
		return m.Occurrence{}
	}

	sorted := append([]m.Occurrence(nil), occurrences...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return pathDepth(sorted[i].Path) < pathDepth(sorted[j].Path)
	})

	return sorted[0]
}

func pathDepth(p m.Path) int {
	return strings.Count(string(p), "/")
}

// ClassifyPackage picks the target package from the file extension, using
// a "component" path hint to separate UI code from general utilities.
func ClassifyPackage(p m.Path) m.PackageLabel {
	switch path.Ext(string(p)) {
	case ".ts", ".tsx", ".js", ".jsx":
		if strings.Contains(strings.ToLower(string(p)), "component") {
			return m.PackageSharedUI
		}

		return m.PackageSharedUtils
	case ".py":
		return m.PackageSharedPython
	default:
		return m.PackageFallback
	}
}
