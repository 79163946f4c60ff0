// Package controller renders scan, plan and stub results for the terminal.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

// UI defines how workflow results reach the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayScanResult prints the textual scan output.
	DisplayScanResult(ctx context.Context, result m.ScanResult) error
	// DisplayCandidates prints the report records in their serialized form.
	DisplayCandidates(ctx context.Context, candidates []m.Candidate) error
	// DisplayPlan prints the consolidation plan grouped by target package.
	DisplayPlan(ctx context.Context, plan m.Plan) error
	// DisplayStubSummary prints what the stub generator did.
	DisplayStubSummary(ctx context.Context, summary m.StubSummary) error
}

// NewUI returns the TUI when attached to a terminal and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
