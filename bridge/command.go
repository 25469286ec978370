package bridge

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long Run waits for output pipes after the process is
// killed; grandchildren may otherwise hold them open.
const waitDelay = time.Second

// Command runs an external sampler that writes a CSV trace (see ReadCSV)
// to standard output. The process is killed when ctx is cancelled.
type Command struct {
	// Path is the executable.
	Path string
	// Args are passed to the executable verbatim.
	Args []string
	// Dir is the working directory; empty means the current one.
	Dir string
	// Env, when non-nil, replaces the process environment.
	Env []string
}

// Run executes the sampler once and parses its output.
func (c Command) Run(ctx context.Context) (*Trace, error) {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = c.Env
	cmd.WaitDelay = waitDelay
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("run %s: %w", c.Path, ctxErr)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("run %s: %w: %s", c.Path, err, msg)
		}
		return nil, fmt.Errorf("run %s: %w", c.Path, err)
	}
	t, err := ReadCSV(&stdout)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", c.Path, err)
	}
	return t, nil
}

// Draws runs the sampler and returns the draws of param. Each call starts
// a new process; call Run once and query the Trace for several parameters.
func (c Command) Draws(ctx context.Context, param string) ([]float64, error) {
	t, err := c.Run(ctx)
	if err != nil {
		return nil, err
	}
	return t.Draws(ctx, param)
}
