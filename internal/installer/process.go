package installer

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"wordless/internal/logger"
)

// Result is the outcome of an external process run.
type Result struct {
	ExitCode int
	Output   []byte // combined stdout and stderr
}

// Runner abstracts external processes (git, the theme generator) so they can
// be replaced by test doubles.
type Runner interface {
	// LookPath reports the resolved path of name, or an error if it is not installed.
	LookPath(name string) (string, error)
	// Run executes name with args in dir and waits for it to exit. A nonzero
	// exit is reported through Result.ExitCode, not as an error; the error is
	// reserved for processes that could not be started at all.
	Run(ctx context.Context, dir, name string, args ...string) (Result, error)
}

// ExecRunner runs real processes via os/exec.
type ExecRunner struct{}

// LookPath delegates to exec.LookPath.
func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes the command and captures its combined output.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	logger.Debug("[DEBUG] Running command: %s %s (in %s)\n", name, strings.Join(args, " "), dir)

	err := cmd.Run()
	res := Result{Output: out.Bytes()}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	if err != nil {
		return res, err
	}
	return res, nil
}

// requireTool fails with TagToolMissing when name cannot be found.
func requireTool(r Runner, name string) error {
	if _, err := r.LookPath(name); err != nil {
		return goerr.Wrap(err, "required tool is not installed", goerr.T(TagToolMissing), goerr.V("tool", name))
	}
	return nil
}

// runTool runs a tool and converts a start failure or nonzero exit into a
// TagExternalTool error carrying the process output.
func runTool(ctx context.Context, r Runner, dir, name string, args ...string) error {
	res, err := r.Run(ctx, dir, name, args...)
	if err != nil {
		return goerr.Wrap(err, "failed to start external tool",
			goerr.T(TagExternalTool), goerr.V("tool", name), goerr.V("args", args))
	}
	logger.Debug("[DEBUG] %s output: %s\n", name, res.Output)
	if res.ExitCode != 0 {
		return goerr.New("external tool exited with nonzero status",
			goerr.T(TagExternalTool),
			goerr.V("tool", name),
			goerr.V("args", args),
			goerr.V("exit_code", res.ExitCode),
			goerr.V("output", strings.TrimSpace(string(res.Output))))
	}
	return nil
}
