package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/mrdannyclark82/MillaCore-Fusion/internal/adapter"
	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

const (
	// StubExtension is the extension of every generated stub.
	StubExtension = ".py"
	// PlaceholderIdentifier replaces names that sanitize to nothing usable.
	PlaceholderIdentifier = "fn"
)

// StubGenerator stages one placeholder file per sanitized function name.
type StubGenerator interface {
	// Generate creates missing stubs under dir. Existing stubs are never
	// modified, so manual edits survive repeated runs.
	Generate(ctx context.Context, dir m.Path, candidates []m.Candidate) (m.StubSummary, error)
}

type stubGenerator struct {
	adapter.SourceFSAdapter
}

// NewStubGenerator constructs a StubGenerator writing through fsAdapter.
func NewStubGenerator(fsAdapter adapter.SourceFSAdapter) StubGenerator {
	return &stubGenerator{SourceFSAdapter: fsAdapter}
}

func (g *stubGenerator) Generate(ctx context.Context, dir m.Path, candidates []m.Candidate) (m.StubSummary, error) {
	summary := m.StubSummary{Dir: dir}

	if err := g.MkdirAll(ctx, dir); err != nil {
		slog.Error("Failed to create stubs directory", "dir", dir, "error", err)
		return summary, fmt.Errorf("create stubs dir %s: %w", dir, err)
	}

	seen := map[string]struct{}{}

	for _, candidate := range candidates {
		identifier := SanitizeIdentifier(candidate.Function)
		if _, dup := seen[identifier]; dup {
			slog.Info("Stub identifier already handled in this run", "function", candidate.Function, "identifier", identifier)
			continue
		}

		seen[identifier] = struct{}{}

		result, err := g.generateOne(ctx, dir, identifier, candidate)
		if err != nil {
			return summary, err
		}

		summary.Results = append(summary.Results, result)
	}

	return summary, nil
}

func (g *stubGenerator) generateOne(ctx context.Context, dir m.Path, identifier string, candidate m.Candidate) (m.StubResult, error) {
	path := g.JoinPath(string(dir), identifier+StubExtension)
	content := RenderStub(identifier, candidate)

	result := m.StubResult{
		Function:   candidate.Function,
		Identifier: identifier,
		Path:       path,
		Status:     m.StubCreated,
	}

	err := g.CreateExclusive(ctx, path, content, 0o644)
	if err == nil {
		slog.Info("Created stub", "path", path, "function", candidate.Function)
		return result, nil
	}

	if !adapter.IsExist(err) {
		slog.Error("Failed to create stub", "path", path, "error", err)
		return result, fmt.Errorf("create stub %s: %w", path, err)
	}

	result.Status = m.StubKept

	existing, readErr := g.ReadFile(ctx, path)
	if readErr != nil {
		slog.Info("Stub already exists, leaving untouched", "path", path, "readError", readErr)
		return result, nil
	}

	if !bytes.Equal(existing, content) {
		result.Status = m.StubStale

		slog.Info("Stub already exists and differs from the current occurrences, leaving untouched", "path", path)
		slog.Debug("Stub drift", "path", path, "diff", stubDiff(string(path), existing, content))

		return result, nil
	}

	slog.Info("Stub already exists, leaving untouched", "path", path)

	return result, nil
}

// SanitizeIdentifier maps every character outside [A-Za-z0-9_] to '_'.
// Names without a single letter or digit fall back to PlaceholderIdentifier.
func SanitizeIdentifier(name string) string {
	var (
		b        strings.Builder
		hasAlnum bool
	)

	for _, r := range name {
		switch {
		case isASCIIAlnum(r):
			hasAlnum = true

			b.WriteRune(r)
		case r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	if !hasAlnum {
		return PlaceholderIdentifier
	}

	return b.String()
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// RenderStub returns the placeholder file for candidate.
func RenderStub(identifier string, candidate m.Candidate) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "# Auto-generated consolidation stub for function: %s\n", candidate.Function)
	b.WriteString("# Review occurrences:\n")

	for _, occ := range candidate.Occurrences {
		fmt.Fprintf(&b, "#   %s\n", occ)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "def %s(*args, **kwargs):\n", identifier)
	b.WriteString("    \"\"\"IMPLEMENTATION: merge canonical behavior from occurrences listed above.\"\"\"\n")
	b.WriteString("    raise NotImplementedError(\"Consolidate and implement this function based on occurrences\")\n")

	return []byte(b.String())
}

func stubDiff(name string, existing, fresh []byte) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(existing)),
		B:        difflib.SplitLines(string(fresh)),
		FromFile: name,
		ToFile:   name + " (regenerated)",
		Context:  1,
	})
	if err != nil {
		return ""
	}

	return diff
}
