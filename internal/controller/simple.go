package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mrdannyclark82/MillaCore-Fusion/internal/adapter"
	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

// SimpleUI writes plain text to the command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayScanResult prints every duplicate group followed by a summary line.
func (s *SimpleUI) DisplayScanResult(ctx context.Context, result m.ScanResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := io.WriteString(s.out(), RenderScanText(result))

	return err
}

// RenderScanText renders result in the line shapes the legacy parser reads.
func RenderScanText(result m.ScanResult) string {
	var b bytes.Buffer

	for _, group := range result.Duplicates {
		fmt.Fprintf(&b, m.ScanCandidateFormat+"\n", group.Key.Name, group.Key.Digest)

		for _, occ := range group.Occurrences {
			fmt.Fprintf(&b, m.ScanOccurrenceFormat+"\n", occ)
		}

		b.WriteString("\n")
	}

	if len(result.Duplicates) == 0 {
		b.WriteString(m.ScanNoDuplicates + "\n")
	} else {
		fmt.Fprintf(&b, m.ScanFoundFormat+"\n", len(result.Duplicates))
	}

	return b.String()
}

// DisplayCandidates prints the report JSON.
func (s *SimpleUI) DisplayCandidates(ctx context.Context, candidates []m.Candidate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := adapter.EncodeCandidates(candidates)
	if err != nil {
		return err
	}

	_, err = s.out().Write(data)

	return err
}

// DisplayPlan prints one table per target package and the final count.
func (s *SimpleUI) DisplayPlan(ctx context.Context, plan m.Plan) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := io.WriteString(s.out(), RenderPlanText(plan))

	return err
}

// RenderPlanText renders the plan as plain text tables.
func RenderPlanText(plan m.Plan) string {
	var b bytes.Buffer

	b.WriteString("=== Consolidation Plan ===\n")

	for _, pkg := range plan.Packages {
		fmt.Fprintf(&b, "\n%s:\n", pkg.Package)
		b.WriteString(renderPackageTable(pkg))
	}

	b.WriteString("\n")
	b.WriteString(planFooter(plan))

	return b.String()
}

func renderPackageTable(pkg m.PackagePlan) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Function", "Canonical", "Occurrences"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, entry := range pkg.Entries {
		table.Append([]string{entry.Function, entry.Canonical.String(), strconv.Itoa(len(entry.Occurrences))})
	}

	table.Render()

	return tableBuffer.String()
}

func planFooter(plan m.Plan) string {
	return fmt.Sprintf("Analysis complete. Found %d functions to consolidate.\n", plan.Total()) +
		"This is a proposal only; no source file was modified. Consolidate manually.\n"
}

// DisplayStubSummary prints one row per stub and the created/kept totals.
func (s *SimpleUI) DisplayStubSummary(ctx context.Context, summary m.StubSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := io.WriteString(s.out(), RenderStubSummary(summary))

	return err
}

// RenderStubSummary renders the stub generator outcome.
func RenderStubSummary(summary m.StubSummary) string {
	var b bytes.Buffer

	if len(summary.Results) > 0 {
		table := tablewriter.NewWriter(&b)
		table.SetHeader([]string{"Function", "Stub", "Status"})
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetAutoWrapText(false)

		for _, r := range summary.Results {
			table.Append([]string{r.Function, string(r.Path), r.Status.String()})
		}

		table.Render()
	}

	fmt.Fprintf(&b, "Stubs in %s: %d created, %d kept, %d stale\n",
		summary.Dir,
		summary.Count(m.StubCreated),
		summary.Count(m.StubKept),
		summary.Count(m.StubStale))

	return b.String()
}

func (s *SimpleUI) out() io.Writer {
	return s.cmd.OutOrStdout()
}
