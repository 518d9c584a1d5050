package scoring

import (
	"bytes"
	"context"
	"os/exec"
)

// Executor runs the external scoring process against a staged request file
// and returns whatever it wrote, parsed or not. The call blocks until the
// process terminates or the context is cancelled.
type Executor interface {
	Execute(ctx context.Context, requestPath string) (stdout, stderr string, err error)
}

// PythonExecutor invokes the scoring script with the request path as its
// single argument.
type PythonExecutor struct {
	python string
	script string
}

func NewPythonExecutor(python, script string) *PythonExecutor {
	if python == "" {
		python = "python3"
	}
	return &PythonExecutor{python: python, script: script}
}

func (e *PythonExecutor) Execute(ctx context.Context, requestPath string) (string, string, error) {
	cmd := exec.CommandContext(ctx, e.python, e.script, requestPath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
