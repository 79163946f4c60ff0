package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

// ReportStore persists the duplicate-candidate report shared by the scan,
// plan and stub stages.
type ReportStore interface {
	SaveCandidates(ctx context.Context, path m.Path, candidates []m.Candidate) error
	LoadCandidates(ctx context.Context, path m.Path) ([]m.Candidate, error)
}

// JSONReportStore stores the report as an indented JSON array of
// {"function", "occurrences"} records.
type JSONReportStore struct {
	fs SourceFSAdapter
}

// NewJSONReportStore constructs a JSONReportStore on top of fs.
func NewJSONReportStore(fs SourceFSAdapter) *JSONReportStore {
	return &JSONReportStore{fs: fs}
}

// SaveCandidates overwrites the report at path. Field order and indentation
// are fixed so repeated scans of an unchanged tree produce identical bytes.
func (s *JSONReportStore) SaveCandidates(ctx context.Context, path m.Path, candidates []m.Candidate) error {
	data, err := EncodeCandidates(candidates)
	if err != nil {
		return err
	}

	if err := s.fs.WriteFileAtomic(ctx, path, data, 0o644); err != nil {
		slog.Error("Failed to write report", "path", path, "error", err)
		return fmt.Errorf("write report %s: %w", path, err)
	}

	slog.Debug("Wrote report", "path", path, "records", len(candidates))

	return nil
}

// LoadCandidates reads the report at path.
func (s *JSONReportStore) LoadCandidates(ctx context.Context, path m.Path) ([]m.Candidate, error) {
	data, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		slog.Error("Failed to read report", "path", path, "error", err)
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}

	candidates, err := DecodeCandidates(data)
	if err != nil {
		slog.Error("Failed to decode report", "path", path, "error", err)
		return nil, fmt.Errorf("decode report %s: %w", path, err)
	}

	return candidates, nil
}

// EncodeCandidates renders candidates in the report wire format.
func EncodeCandidates(candidates []m.Candidate) ([]byte, error) {
	if candidates == nil {
		candidates = []m.Candidate{}
	}

	normalized := make([]m.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Occurrences == nil {
			c.Occurrences = []string{}
		}

		normalized = append(normalized, c)
	}

	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(normalized); err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}

	return buf.Bytes(), nil
}

// DecodeCandidates parses the report wire format.
func DecodeCandidates(data []byte) ([]m.Candidate, error) {
	var candidates []m.Candidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, err
	}

	if candidates == nil {
		candidates = []m.Candidate{}
	}

	return candidates, nil
}
