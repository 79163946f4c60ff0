package domain

import (
	"strings"

	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

// Extractor finds function-like blocks in a source file.
type Extractor interface {
	Extract(file m.SourceFile) []m.Block
}

type extractor struct{}

// NewExtractor returns the line-oriented, heuristic block extractor.
func NewExtractor() Extractor {
	return &extractor{}
}

type extractState int

const (
	outsideBlock extractState = iota
	insideBlock
)

// blockAccumulator holds the block currently being collected.
type blockAccumulator struct {
	state extractState
	name  string
	start int // 0-based index of the header line
	lines []string
}

// Extract runs a two-state machine over the file. A block opens on a start
// header and closes on the line before the next boundary (new header or
// class) or at end of file. Trailing blank lines and comments stay with the
// block they follow.
func (e *extractor) Extract(file m.SourceFile) []m.Block {
	rules, ok := rulesFor(file.Language)
	if !ok {
		return nil
	}

	var (
		blocks []m.Block
		acc    blockAccumulator
	)

	closeBlock := func(endIndex int) {
		blocks = append(blocks, m.Block{
			Name:      acc.name,
			File:      file.ShortPath,
			StartLine: acc.start + 1,
			EndLine:   endIndex + 1,
			Lines:     acc.lines,
		})
		acc = blockAccumulator{}
	}

	for i, line := range file.Lines {
		trimmed := strings.TrimSpace(line)

		if acc.state == insideBlock {
			if !rules.boundary.MatchString(trimmed) {
				acc.lines = append(acc.lines, line)
				continue
			}

			closeBlock(i - 1)
		}

		if name, isStart := rules.matchStart(trimmed); isStart {
			acc = blockAccumulator{
				state: insideBlock,
				name:  name,
				start: i,
				lines: []string{line},
			}
		}
	}

	if acc.state == insideBlock {
		closeBlock(len(file.Lines) - 1)
	}

	return blocks
}

// SplitLines splits content into lines, keeping each line's terminator.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
