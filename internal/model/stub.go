package model

// StubStatus describes what the generator did for one identifier.
type StubStatus int

const (
	// StubCreated means a new stub file was written.
	StubCreated StubStatus = iota
	// StubKept means a stub already existed with the content we would write.
	StubKept
	// StubStale means a stub already existed but differs from a fresh render.
	// It is never rewritten.
	StubStale
)

// String returns a human readable status.
func (s StubStatus) String() string {
	switch s {
	case StubCreated:
		return "created"
	case StubKept:
		return "kept"
	case StubStale:
		return "kept (stale)"
	default:
		return "unknown"
	}
}

// StubResult reports the outcome for one sanitized identifier.
type StubResult struct {
	Function   string
	Identifier string
	Path       Path
	Status     StubStatus
}

// StubSummary is the outcome of one generator run.
type StubSummary struct {
	Dir     Path
	Results []StubResult
}

// Count returns how many results have the given status.
func (s StubSummary) Count(status StubStatus) int {
	n := 0
	for _, r := range s.Results {
		if r.Status == status {
			n++
		}
	}

	return n
}
