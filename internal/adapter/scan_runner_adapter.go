package adapter

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"time"
)

// ScanRunnerAdapter runs a scan as a separate process and captures what it printed.
type ScanRunnerAdapter interface {
	// RunScan executes the scan in workDir and returns its combined
	// stdout/stderr output. A non-nil error does not mean the output is
	// unusable: the scan exits non-zero when it found duplicates.
	RunScan(ctx context.Context, workDir string, args ...string) (output string, err error)
}

// LocalScanRunnerAdapter re-executes the current binary with the scan command.
type LocalScanRunnerAdapter struct {
	executable string
	timeout    time.Duration
}

// NewLocalScanRunnerAdapter constructs a LocalScanRunnerAdapter with a 10 minute timeout.
func NewLocalScanRunnerAdapter() *LocalScanRunnerAdapter {
	executable, err := os.Executable()
	if err != nil {
		executable = os.Args[0]
	}

	return &LocalScanRunnerAdapter{
		executable: executable,
		timeout:    10 * time.Minute,
	}
}

// NewScanRunnerAdapterFor builds an adapter that runs an arbitrary executable.
func NewScanRunnerAdapterFor(executable string, timeout time.Duration) *LocalScanRunnerAdapter {
	return &LocalScanRunnerAdapter{executable: executable, timeout: timeout}
}

// RunScan runs "<executable> <args...>" in workDir.
func (a *LocalScanRunnerAdapter) RunScan(ctx context.Context, workDir string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	// #nosec G204 - executable is this binary or an explicitly configured scanner
	cmd := exec.CommandContext(ctx, a.executable, args...)
	cmd.Dir = workDir
	cmd.WaitDelay = time.Second

	var combined bytes.Buffer

	cmd.Stdout = &combined
	cmd.Stderr = &combined

	err := cmd.Run()

	return combined.String(), err
}
