package clip

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

const (
	// DefaultProgram is the clipboard utility looked up on $PATH.
	DefaultProgram = "xclip"
	// DefaultSelection is the X selection used for every operation.
	DefaultSelection = "clipboard"

	// stderrDrainDelay bounds how long Wait keeps reading stderr after the
	// utility exits. xclip -i and -t fork a child that keeps serving the
	// selection and inherits stderr, so the pipe may never close.
	stderrDrainDelay = 250 * time.Millisecond
)

// Options configures the xclip backend. Zero values select the defaults.
type Options struct {
	Program   string
	Selection string
}

// XClip drives the xclip utility.
type XClip struct {
	prog      string
	selection string
}

// NewXClip returns an xclip backend. The program is resolved at spawn time,
// so a missing binary surfaces as an error from the first operation.
func NewXClip(opts Options) *XClip {
	if opts.Program == "" {
		opts.Program = DefaultProgram
	}
	if opts.Selection == "" {
		opts.Selection = DefaultSelection
	}
	return &XClip{prog: opts.Program, selection: opts.Selection}
}

func (x *XClip) Name() string { return "xclip (" + x.selection + ")" }

// WriteBytes runs "xclip -selection <sel> -i" and feeds data on its stdin.
func (x *XClip) WriteBytes(ctx context.Context, data []byte) error {
	cmd, stderr := x.command(ctx, "-i")
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("%w: stdin pipe: %w", ErrCopyFailed, err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: error executing %s: %w", ErrCopyFailed, x.prog, err)
	}

	_, writeErr := stdin.Write(data)
	closeErr := stdin.Close()

	if err := x.wait(cmd, stderr); err != nil {
		return fmt.Errorf("%w: %w", ErrCopyFailed, err)
	}
	if writeErr != nil {
		return fmt.Errorf("%w: write: %w", ErrCopyFailed, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: close: %w", ErrCopyFailed, closeErr)
	}
	return nil
}

// WriteFile runs "xclip -selection <sel> -t <mime> <path>".
func (x *XClip) WriteFile(ctx context.Context, path, mime string) error {
	cmd, stderr := x.command(ctx, "-t", mime, path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: error executing %s: %w", ErrCopyFailed, x.prog, err)
	}
	if err := x.wait(cmd, stderr); err != nil {
		return fmt.Errorf("%w: %w", ErrCopyFailed, err)
	}
	return nil
}

// ReadAll runs "xclip -selection <sel> -o" and drains its stdout before
// waiting on it.
func (x *XClip) ReadAll(ctx context.Context) ([]byte, error) {
	cmd, stderr := x.command(ctx, "-o")
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stdout pipe: %w", ErrReadFailed, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: error executing %s: %w", ErrReadFailed, x.prog, err)
	}

	data, readErr := ReadStream(stdout)

	if err := x.wait(cmd, stderr); err != nil {
		return data, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	if readErr != nil {
		return data, fmt.Errorf("%w: read: %w", ErrReadFailed, readErr)
	}
	return data, nil
}

func (x *XClip) command(ctx context.Context, args ...string) (*exec.Cmd, *bytes.Buffer) {
	argv := append([]string{"-selection", x.selection}, args...)
	slog.Debug("spawning clipboard utility", "prog", x.prog, "args", argv)

	cmd := exec.CommandContext(ctx, x.prog, argv...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	cmd.WaitDelay = stderrDrainDelay
	return cmd, &stderr
}

func (x *XClip) wait(cmd *exec.Cmd, stderr *bytes.Buffer) error {
	err := cmd.Wait()
	msg := strings.TrimSpace(stderr.String())
	if msg != "" {
		slog.Debug("clipboard utility stderr", "prog", x.prog, "stderr", msg)
	}
	if err == nil || errors.Is(err, exec.ErrWaitDelay) {
		return nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return &ExitError{Prog: x.prog, Code: ee.ExitCode(), Stderr: msg}
	}
	return err
}
