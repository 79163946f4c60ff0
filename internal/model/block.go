package model

import "fmt"

// Block is a contiguous line range heuristically identified as one
// function-like definition.
type Block struct {
	Name      string
	File      Path
	StartLine int // 1-indexed, inclusive
	EndLine   int // inclusive
	Lines     []string
}

// Occurrence is the stable cross-stage reference to where a block was found.
type Occurrence struct {
	Path      Path
	StartLine int
	EndLine   int
}

// String renders the occurrence as <path>:<start>-<end>.
func (o Occurrence) String() string {
	return fmt.Sprintf("%s:%d-%d", o.Path, o.StartLine, o.EndLine)
}

// Occurrence returns the location of the block.
func (b Block) Occurrence() Occurrence {
	return Occurrence{Path: b.File, StartLine: b.StartLine, EndLine: b.EndLine}
}

// GroupKey identifies a duplicate group. Both fields must match for two
// blocks to be considered duplicates.
type GroupKey struct {
	Name   string
	Digest string
}

// DuplicateGroup is the set of occurrences sharing a GroupKey, in discovery order.
type DuplicateGroup struct {
	Key         GroupKey
	Occurrences []Occurrence
}
