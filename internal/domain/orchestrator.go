package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mrdannyclark82/MillaCore-Fusion/internal/adapter"
	"github.com/mrdannyclark82/MillaCore-Fusion/internal/controller"
	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

// CandidateSource selects where the orchestrator gets its candidates.
type CandidateSource string

const (
	// SourceScan runs the scanner in-process and uses its structured result.
	SourceScan CandidateSource = "scan"
	// SourceExec runs the scan command as a subprocess and parses its text output.
	SourceExec CandidateSource = "exec"
	// SourceReport reads an existing report without scanning.
	SourceReport CandidateSource = "report"
)

// ParseCandidateSource validates a --source value.
func ParseCandidateSource(s string) (CandidateSource, error) {
	switch CandidateSource(s) {
	case SourceScan, SourceExec, SourceReport:
		return CandidateSource(s), nil
	}

	return "", fmt.Errorf("unknown candidate source %q (want scan, exec or report)", s)
}

// OrchestrateArgs contains the arguments for the orchestrate command.
type OrchestrateArgs struct {
	ScanArgs
	Source   CandidateSource
	Report   m.Path
	StubsDir m.Path
	// WorkDir is where a subprocess scan runs.
	WorkDir string
}

// Orchestrator coordinates getting a candidate set for stub generation,
// either from a fresh scan or from the existing report.
type Orchestrator interface {
	Collect(ctx context.Context, args OrchestrateArgs) ([]m.Candidate, error)
}

type orchestrator struct {
	adapter.ReportStore
	adapter.ScanRunnerAdapter
	controller.UI

	scanner Scanner
}

// NewOrchestrator constructs an Orchestrator.
func NewOrchestrator(
	reportStore adapter.ReportStore,
	runner adapter.ScanRunnerAdapter,
	ui controller.UI,
	scanner Scanner,
) Orchestrator {
	return &orchestrator{
		ReportStore:       reportStore,
		ScanRunnerAdapter: runner,
		UI:                ui,
		scanner:           scanner,
	}
}

func (o *orchestrator) Collect(ctx context.Context, args OrchestrateArgs) ([]m.Candidate, error) {
	switch args.Source {
	case SourceExec:
		return o.collectFromProcess(ctx, args)
	case SourceReport:
		return o.LoadCandidates(ctx, args.Report)
	case SourceScan:
		return o.collectFromScan(ctx, args)
	default:
		return o.collectFromScan(ctx, args)
	}
}

func (o *orchestrator) collectFromScan(ctx context.Context, args OrchestrateArgs) ([]m.Candidate, error) {
	result, err := o.scanner.Scan(ctx, args.ScanArgs)
	if err != nil {
		slog.Error("Scan failed", "root", args.Root, "error", err)
		return nil, fmt.Errorf("scan: %w", err)
	}

	if err := o.DisplayScanResult(ctx, result); err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}

	return BuildCandidates(result.Duplicates), nil
}

// collectFromProcess runs "scan" out of process. A non-zero exit is expected
// when duplicates exist, so the captured output is parsed regardless.
func (o *orchestrator) collectFromProcess(ctx context.Context, args OrchestrateArgs) ([]m.Candidate, error) {
	scanArgs := []string{"scan", "--root", string(args.Root)}
	for _, pattern := range args.Exclude {
		scanArgs = append(scanArgs, "--exclude", pattern)
	}

	if args.Threads > 0 {
		scanArgs = append(scanArgs, "--parallel", fmt.Sprint(args.Threads))
	}

	output, err := o.RunScan(ctx, args.WorkDir, scanArgs...)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	if err != nil {
		slog.Warn("Scan process exited with an error, parsing captured output", "error", err)
	}

	candidates := ParseScanOutput(output)

	if len(candidates) == 0 && !ScanOutputReportsNoDuplicates(output) {
		slog.Warn("Scan output contained no recognisable candidates", "bytes", len(output))
	}

	slog.Debug("Parsed scan output", "candidates", len(candidates))

	if candidates == nil {
		candidates = []m.Candidate{}
	}

	return candidates, nil
}
