package model

// Candidate is one record of the report artifact.
type Candidate struct {
	Function    string   `json:"function" yaml:"function"`
	Occurrences []string `json:"occurrences" yaml:"occurrences"`
}

// ScanResult is the output of a full scan pass.
type ScanResult struct {
	FilesScanned int
	FilesSkipped int
	Blocks       int
	// Duplicates holds only groups with two or more occurrences.
	Duplicates []DuplicateGroup
}
