package model

// Line shapes of the human-readable scan output. The orchestrator's legacy
// parser recognises exactly these shapes and ignores everything else.
const (
	ScanCandidateFormat  = "Duplicate candidate: %s (hash %s) found in:"
	ScanOccurrenceFormat = "  - %s"
	ScanNoDuplicates     = "No obvious duplicates found by conservative scan."
	ScanFoundFormat      = "Found %d candidate duplicated functions. Review manually before merging."
)
