package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/mrdannyclark82/MillaCore-Fusion/internal/adapter/mocks"
	controllermocks "github.com/mrdannyclark82/MillaCore-Fusion/internal/controller/mocks"
	"github.com/mrdannyclark82/MillaCore-Fusion/internal/domain"
	domainmocks "github.com/mrdannyclark82/MillaCore-Fusion/internal/domain/mocks"
	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

type workflowMocks struct {
	reports      *adaptermocks.MockReportStore
	plans        *adaptermocks.MockPlanStore
	ui           *controllermocks.MockUI
	scanner      *domainmocks.MockScanner
	planner      *domainmocks.MockPlanner
	stubs        *domainmocks.MockStubGenerator
	orchestrator *domainmocks.MockOrchestrator
}

func newWorkflowUnderTest(t *testing.T) (domain.Workflow, workflowMocks) {
	t.Helper()

	mocks := workflowMocks{
		reports:      adaptermocks.NewMockReportStore(t),
		plans:        adaptermocks.NewMockPlanStore(t),
		ui:           controllermocks.NewMockUI(t),
		scanner:      domainmocks.NewMockScanner(t),
		planner:      domainmocks.NewMockPlanner(t),
		stubs:        domainmocks.NewMockStubGenerator(t),
		orchestrator: domainmocks.NewMockOrchestrator(t),
	}

	wf := domain.NewWorkflow(mocks.reports, mocks.plans, mocks.ui,
		mocks.scanner, mocks.planner, mocks.stubs, mocks.orchestrator)

	return wf, mocks
}

func duplicateResult() m.ScanResult {
	return m.ScanResult{
		FilesScanned: 2,
		Blocks:       2,
		Duplicates: []m.DuplicateGroup{{
			Key: m.GroupKey{Name: "helper", Digest: "abc"},
			Occurrences: []m.Occurrence{
				{Path: "a.py", StartLine: 1, EndLine: 2},
				{Path: "b.py", StartLine: 1, EndLine: 2},
			},
		}},
	}
}

var helperCandidates = []m.Candidate{{Function: "helper", Occurrences: []string{"a.py:1-2", "b.py:1-2"}}}

func TestWorkflow_Scan_TextWithDuplicates(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)
	args := domain.ScanCommandArgs{ScanArgs: domain.ScanArgs{Root: "."}, Format: domain.FormatText}

	mocks.scanner.On("Scan", mock.Anything, args.ScanArgs).Return(duplicateResult(), nil).Once()
	mocks.ui.On("DisplayScanResult", mock.Anything, duplicateResult()).Return(nil).Once()

	err := wf.Scan(context.Background(), args)
	assert.ErrorIs(t, err, domain.ErrDuplicatesFound)
}

func TestWorkflow_Scan_NoDuplicates(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)
	args := domain.ScanCommandArgs{ScanArgs: domain.ScanArgs{Root: "."}}

	mocks.scanner.On("Scan", mock.Anything, args.ScanArgs).Return(m.ScanResult{FilesScanned: 3}, nil).Once()
	mocks.ui.On("DisplayScanResult", mock.Anything, m.ScanResult{FilesScanned: 3}).Return(nil).Once()

	require.NoError(t, wf.Scan(context.Background(), args))
}

func TestWorkflow_Scan_JSONWritesReport(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)
	args := domain.ScanCommandArgs{
		ScanArgs:    domain.ScanArgs{Root: "repo"},
		Format:      domain.FormatJSON,
		WriteReport: true,
		Report:      "out/report.json",
	}

	mocks.scanner.On("Scan", mock.Anything, args.ScanArgs).Return(duplicateResult(), nil).Once()
	mocks.reports.On("SaveCandidates", mock.Anything, m.Path("out/report.json"), helperCandidates).Return(nil).Once()
	mocks.ui.On("DisplayCandidates", mock.Anything, helperCandidates).Return(nil).Once()

	assert.ErrorIs(t, wf.Scan(context.Background(), args), domain.ErrDuplicatesFound)
}

func TestWorkflow_Scan_Failure(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)
	boom := errors.New("boom")

	mocks.scanner.On("Scan", mock.Anything, mock.Anything).Return(m.ScanResult{}, boom).Once()

	err := wf.Scan(context.Background(), domain.ScanCommandArgs{})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrDuplicatesFound)
}

func TestWorkflow_Plan_DisplaysAndExports(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)
	plan := m.Plan{Packages: []m.PackagePlan{{Package: m.PackageSharedPython}}}

	mocks.reports.On("LoadCandidates", mock.Anything, m.Path("r.json")).Return(helperCandidates, nil).Once()
	mocks.planner.On("Plan", helperCandidates).Return(plan, nil).Once()
	mocks.ui.On("DisplayPlan", mock.Anything, plan).Return(nil).Once()
	mocks.plans.On("SavePlan", mock.Anything, m.Path("plan.yaml"), plan).Return(nil).Once()

	require.NoError(t, wf.Plan(context.Background(), domain.PlanArgs{Report: "r.json", Output: "plan.yaml"}))
}

func TestWorkflow_Plan_MissingReport(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)

	mocks.reports.On("LoadCandidates", mock.Anything, m.Path("missing.json")).
		Return(nil, errors.New("open missing.json: no such file")).Once()

	require.Error(t, wf.Plan(context.Background(), domain.PlanArgs{Report: "missing.json"}))
}

func TestWorkflow_Plan_WarningsFailAfterDisplay(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)
	warnings := []domain.PlanWarning{{Function: "bad", Occurrence: "x", Err: domain.ErrMalformedOccurrence}}

	mocks.reports.On("LoadCandidates", mock.Anything, m.Path("r.json")).Return(helperCandidates, nil).Once()
	mocks.planner.On("Plan", helperCandidates).Return(m.Plan{}, warnings).Once()
	mocks.ui.On("DisplayPlan", mock.Anything, m.Plan{}).Return(nil).Once()

	err := wf.Plan(context.Background(), domain.PlanArgs{Report: "r.json"})
	assert.ErrorIs(t, err, domain.ErrMalformedReport)
	assert.ErrorIs(t, err, domain.ErrMalformedOccurrence)
}

func TestWorkflow_Orchestrate_SavesReportAndGeneratesStubs(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)
	args := domain.OrchestrateArgs{Source: domain.SourceScan, Report: "r.json", StubsDir: "stubs"}
	summary := m.StubSummary{Dir: "stubs", Results: []m.StubResult{{Function: "helper", Status: m.StubCreated}}}

	mocks.orchestrator.On("Collect", mock.Anything, args).Return(helperCandidates, nil).Once()
	mocks.reports.On("SaveCandidates", mock.Anything, m.Path("r.json"), helperCandidates).Return(nil).Once()
	mocks.stubs.On("Generate", mock.Anything, m.Path("stubs"), helperCandidates).Return(summary, nil).Once()
	mocks.ui.On("DisplayStubSummary", mock.Anything, summary).Return(nil).Once()

	require.NoError(t, wf.Orchestrate(context.Background(), args))
}

func TestWorkflow_Orchestrate_FromReportDoesNotRewriteIt(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)
	args := domain.OrchestrateArgs{Source: domain.SourceReport, Report: "r.json", StubsDir: "stubs"}

	mocks.orchestrator.On("Collect", mock.Anything, args).Return(helperCandidates, nil).Once()
	mocks.stubs.On("Generate", mock.Anything, m.Path("stubs"), helperCandidates).Return(m.StubSummary{Dir: "stubs"}, nil).Once()
	mocks.ui.On("DisplayStubSummary", mock.Anything, m.StubSummary{Dir: "stubs"}).Return(nil).Once()

	require.NoError(t, wf.Orchestrate(context.Background(), args))
	mocks.reports.AssertNotCalled(t, "SaveCandidates", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Orchestrate_ReportWriteFailureStopsBeforeStubs(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)
	args := domain.OrchestrateArgs{Source: domain.SourceScan, Report: "r.json", StubsDir: "stubs"}

	mocks.orchestrator.On("Collect", mock.Anything, args).Return(helperCandidates, nil).Once()
	mocks.reports.On("SaveCandidates", mock.Anything, m.Path("r.json"), helperCandidates).
		Return(errors.New("read-only file system")).Once()

	require.Error(t, wf.Orchestrate(context.Background(), args))
	mocks.stubs.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}
