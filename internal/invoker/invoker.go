// Package invoker runs the external model process and classifies its
// failures. The model runtime is a black box that reads a text prompt on
// stdin and writes generated text to stdout.
package invoker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const (
	DefaultBinary  = "ollama"
	DefaultModel   = "deepseek-v3.1:671b-cloud"
	DefaultTimeout = 120 * time.Second
)

// Kind classifies an invocation failure. Every failure path resolves to
// exactly one kind; the invoker never lets anything else escape.
type Kind int

const (
	Unknown Kind = iota
	Timeout
	ExecutableNotFound
	EmptyOutput
)

type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// KindOf extracts the failure kind from an invocation error.
func KindOf(err error) Kind {
	var invErr *Error
	if errors.As(err, &invErr) {
		return invErr.Kind
	}
	return Unknown
}

// Ollama invokes a locally installed model runtime as a subprocess.
type Ollama struct {
	Binary  string
	Model   string
	Timeout time.Duration
}

func NewOllama(binary, model string, timeout time.Duration) *Ollama {
	if binary == "" {
		binary = DefaultBinary
	}
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Ollama{Binary: binary, Model: model, Timeout: timeout}
}

// Invoke runs "<binary> run <model>" with the transcript on stdin and a
// bounded wait. Output is whitespace-trimmed and backslash escapes are
// decoded best-effort before the empty-output check.
func (o *Ollama) Invoke(ctx context.Context, transcript string) (string, error) {
	binPath, err := locateBinary(o.Binary)
	if err != nil {
		return "", &Error{
			Kind:    ExecutableNotFound,
			Message: fmt.Sprintf("'%s' not found. Please install or run the model runtime.", o.Binary),
			Cause:   err,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, o.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binPath, "run", o.Model)
	cmd.Stdin = strings.NewReader(transcript)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", &Error{
			Kind:    Timeout,
			Message: fmt.Sprintf("model timed out after %s", o.Timeout),
			Cause:   context.DeadlineExceeded,
		}
	}
	if runErr != nil {
		if errors.Is(runErr, exec.ErrNotFound) {
			return "", &Error{
				Kind:    ExecutableNotFound,
				Message: fmt.Sprintf("'%s' not found. Please install or run the model runtime.", o.Binary),
				Cause:   runErr,
			}
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = runErr.Error()
		}
		return "", &Error{Kind: Unknown, Message: msg, Cause: runErr}
	}

	output := DecodeEscapes(strings.TrimSpace(stdout.String()))
	if output == "" {
		return "", &Error{Kind: EmptyOutput, Message: "model returned no output"}
	}
	return output, nil
}
