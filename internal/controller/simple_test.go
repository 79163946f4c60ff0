package controller

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer

	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(&out)

	return cmd, &out
}

func TestRenderScanText_Duplicates(t *testing.T) {
	result := m.ScanResult{Duplicates: []m.DuplicateGroup{
		{
			Key: m.GroupKey{Name: "helper", Digest: "deadbeef"},
			Occurrences: []m.Occurrence{
				{Path: "a.py", StartLine: 1, EndLine: 2},
				{Path: "b.py", StartLine: 3, EndLine: 4},
			},
		},
		{
			Key: m.GroupKey{Name: "pad", Digest: "cafe"},
			Occurrences: []m.Occurrence{
				{Path: "x/pad.js", StartLine: 1, EndLine: 3},
				{Path: "y/pad.js", StartLine: 1, EndLine: 3},
			},
		},
	}}

	want := "Duplicate candidate: helper (hash deadbeef) found in:\n" +
		"  - a.py:1-2\n" +
		"  - b.py:3-4\n" +
		"\n" +
		"Duplicate candidate: pad (hash cafe) found in:\n" +
		"  - x/pad.js:1-3\n" +
		"  - y/pad.js:1-3\n" +
		"\n" +
		"Found 2 candidate duplicated functions. Review manually before merging.\n"

	assert.Equal(t, want, RenderScanText(result))
}

func TestRenderScanText_NoDuplicates(t *testing.T) {
	assert.Equal(t, "No obvious duplicates found by conservative scan.\n", RenderScanText(m.ScanResult{}))
}

func TestSimpleUI_DisplayScanResult(t *testing.T) {
	cmd, out := newTestCommand()

	require.NoError(t, NewSimpleUI(cmd).DisplayScanResult(context.Background(), m.ScanResult{}))
	assert.Equal(t, m.ScanNoDuplicates+"\n", out.String())
}

func TestSimpleUI_DisplayCandidates(t *testing.T) {
	cmd, out := newTestCommand()

	err := NewSimpleUI(cmd).DisplayCandidates(context.Background(), []m.Candidate{
		{Function: "helper", Occurrences: []string{"a.py:1-2", "b.py:1-2"}},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `[{"function":"helper","occurrences":["a.py:1-2","b.py:1-2"]}]`, out.String())
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	cmd, out := newTestCommand()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui := NewSimpleUI(cmd)
	assert.ErrorIs(t, ui.DisplayScanResult(ctx, m.ScanResult{}), context.Canceled)
	assert.ErrorIs(t, ui.DisplayPlan(ctx, m.Plan{}), context.Canceled)
	assert.Empty(t, out.String())
}

func TestRenderPlanText_Empty(t *testing.T) {
	got := RenderPlanText(m.Plan{})

	assert.Equal(t, "=== Consolidation Plan ===\n"+
		"\n"+
		"Analysis complete. Found 0 functions to consolidate.\n"+
		"This is a proposal only; no source file was modified. Consolidate manually.\n", got)
}

func TestRenderPlanText_Packages(t *testing.T) {
	plan := m.Plan{Packages: []m.PackagePlan{
		{
			Package: m.PackageSharedPython,
			Entries: []m.ConsolidationEntry{{
				Function:  "helper",
				Canonical: m.Occurrence{Path: "a.py", StartLine: 1, EndLine: 5},
				Occurrences: []m.Occurrence{
					{Path: "a.py", StartLine: 1, EndLine: 5},
					{Path: "apps/x/a.py", StartLine: 1, EndLine: 5},
					{Path: "packages/y/a.py", StartLine: 1, EndLine: 5},
				},
				Package: m.PackageSharedPython,
			}},
		},
		{
			Package: m.PackageSharedUI,
			Entries: []m.ConsolidationEntry{{
				Function:  "Button",
				Canonical: m.Occurrence{Path: "components/Button.tsx", StartLine: 2, EndLine: 9},
				Occurrences: []m.Occurrence{
					{Path: "components/Button.tsx", StartLine: 2, EndLine: 9},
					{Path: "web/components/Button.tsx", StartLine: 2, EndLine: 9},
				},
				Package: m.PackageSharedUI,
			}},
		},
	}}

	got := RenderPlanText(plan)

	assert.Contains(t, got, "\nshared-python:\n")
	assert.Contains(t, got, "\nshared-ui:\n")
	assert.Less(t, bytes.Index([]byte(got), []byte("shared-python")), bytes.Index([]byte(got), []byte("shared-ui")))
	assert.Contains(t, got, "helper")
	assert.Contains(t, got, "a.py:1-5")
	assert.Contains(t, got, "components/Button.tsx:2-9")
	assert.Contains(t, got, "Found 2 functions to consolidate.")
}

func TestRenderStubSummary(t *testing.T) {
	got := RenderStubSummary(m.StubSummary{
		Dir: "stubs",
		Results: []m.StubResult{
			{Function: "helper", Identifier: "helper", Path: "stubs/helper.py", Status: m.StubCreated},
			{Function: "pad", Identifier: "pad", Path: "stubs/pad.py", Status: m.StubKept},
			{Function: "+++", Identifier: "fn", Path: "stubs/fn.py", Status: m.StubStale},
		},
	})

	assert.Contains(t, got, "stubs/helper.py")
	assert.Contains(t, got, "kept (stale)")
	assert.Contains(t, got, "Stubs in stubs: 1 created, 1 kept, 1 stale\n")
}

func TestRenderStubSummary_Empty(t *testing.T) {
	assert.Equal(t, "Stubs in out: 0 created, 0 kept, 0 stale\n", RenderStubSummary(m.StubSummary{Dir: "out"}))
}

func TestNewUI(t *testing.T) {
	cmd, _ := newTestCommand()

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.False(t, IsTTY(&bytes.Buffer{}))
}
