package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mrdannyclark82/MillaCore-Fusion/internal/adapter"
	"github.com/mrdannyclark82/MillaCore-Fusion/internal/controller"
	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

// OutputFormat selects how the scan command prints its result.
type OutputFormat string

const (
	// FormatText prints the human-readable candidate listing.
	FormatText OutputFormat = "text"
	// FormatJSON prints the report artifact.
	FormatJSON OutputFormat = "json"
)

// ScanCommandArgs contains the arguments for the scan command.
type ScanCommandArgs struct {
	ScanArgs
	Format OutputFormat
	// WriteReport also persists the report to Report.
	WriteReport bool
	Report      m.Path
}

// PlanArgs contains the arguments for the plan command.
type PlanArgs struct {
	Report m.Path
	// Output, when set, receives a YAML export of the plan.
	Output m.Path
}

// Workflow is the entry point used by the CLI commands.
type Workflow interface {
	// Scan returns ErrDuplicatesFound after printing when at least one
	// duplicate group exists.
	Scan(ctx context.Context, args ScanCommandArgs) error
	Plan(ctx context.Context, args PlanArgs) error
	Orchestrate(ctx context.Context, args OrchestrateArgs) error
}

type workflow struct {
	adapter.ReportStore
	adapter.PlanStore
	controller.UI

	scanner      Scanner
	planner      Planner
	stubs        StubGenerator
	orchestrator Orchestrator
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	reportStore adapter.ReportStore,
	planStore adapter.PlanStore,
	ui controller.UI,
	scanner Scanner,
	planner Planner,
	stubs StubGenerator,
	orchestrator Orchestrator,
) Workflow {
	return &workflow{
		ReportStore:  reportStore,
		PlanStore:    planStore,
		UI:           ui,
		scanner:      scanner,
		planner:      planner,
		stubs:        stubs,
		orchestrator: orchestrator,
	}
}

func (w *workflow) Scan(ctx context.Context, args ScanCommandArgs) error {
	result, err := w.scanner.Scan(ctx, args.ScanArgs)
	if err != nil {
		slog.Error("Scan failed", "root", args.Root, "error", err)
		return fmt.Errorf("scan: %w", err)
	}

	candidates := BuildCandidates(result.Duplicates)

	if args.WriteReport {
		if err := w.SaveCandidates(ctx, args.Report, candidates); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	switch args.Format {
	case FormatJSON:
		err = w.DisplayCandidates(ctx, candidates)
	case FormatText:
		err = w.DisplayScanResult(ctx, result)
	default:
		err = w.DisplayScanResult(ctx, result)
	}

	if err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if len(candidates) > 0 {
		return ErrDuplicatesFound
	}

	return nil
}

func (w *workflow) Plan(ctx context.Context, args PlanArgs) error {
	candidates, err := w.LoadCandidates(ctx, args.Report)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	slog.Debug("Loaded report", "path", args.Report, "records", len(candidates))

	plan, warnings := w.planner.Plan(candidates)

	if err := w.DisplayPlan(ctx, plan); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if args.Output != "" {
		if err := w.SavePlan(ctx, args.Output, plan); err != nil {
			return fmt.Errorf("save plan: %w", err)
		}
	}

	if len(warnings) > 0 {
		first := warnings[0]
		return fmt.Errorf("%w: %d record(s) skipped, first: %s (%q): %w",
			ErrMalformedReport, len(warnings), first.Function, first.Occurrence, first.Err)
	}

	return nil
}

func (w *workflow) Orchestrate(ctx context.Context, args OrchestrateArgs) error {
	candidates, err := w.orchestrator.Collect(ctx, args)
	if err != nil {
		return fmt.Errorf("collect candidates: %w", err)
	}

	if args.Source != SourceReport {
		if err := w.SaveCandidates(ctx, args.Report, candidates); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	summary, err := w.stubs.Generate(ctx, args.StubsDir, candidates)
	if err != nil {
		return fmt.Errorf("generate stubs: %w", err)
	}

	if err := w.DisplayStubSummary(ctx, summary); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}
