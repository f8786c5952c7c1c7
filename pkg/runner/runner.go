// Package runner runs one-line shell commands synchronously and keeps a
// plain-text transcript of what happened.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
)

// ErrUnsupportedPlatform is returned when no host shell is known for GOOS.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Transcript messages
const (
	PromptPrefix       = "> "
	DirPrefix          = "DIR: "
	UnsupportedMessage = "! Unsupported platform."
)

// HostShell returns the interpreter and flag used to run a command string
// on goos, or ok=false when the platform has none we know of.
func HostShell(goos string) (shell string, flag string, ok bool) {
	switch goos {
	case "windows":
		return "cmd", "/C", true
	case "linux", "darwin", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "illumos", "aix", "android":
		return "/bin/sh", "-c", true
	default:
		return "", "", false
	}
}

// Result is what one command produced.
type Result struct {
	Command  string
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes commands in a fixed working directory.
type Runner struct {
	mu         sync.Mutex
	dir        string
	goos       string
	lines      []string
	onAppend   func(line string)
	spawnCount int
}

// Option configures a Runner.
type Option func(*Runner)

// WithDir overrides the working directory (default: the process cwd).
func WithDir(dir string) Option {
	return func(r *Runner) { r.dir = dir }
}

// WithGOOS overrides the platform used to pick the host shell.
func WithGOOS(goos string) Option {
	return func(r *Runner) { r.goos = goos }
}

// WithAppendHook is called with each transcript line as it is added.
func WithAppendHook(fn func(line string)) Option {
	return func(r *Runner) { r.onAppend = fn }
}

// New creates a Runner and writes the working directory to the transcript.
func New(opts ...Option) *Runner {
	r := &Runner{goos: runtime.GOOS}
	for _, opt := range opts {
		opt(r)
	}
	if r.dir == "" {
		if wd, err := os.Getwd(); err == nil {
			r.dir = wd
		}
	}
	r.showDir()
	return r
}

// Dir returns the working directory commands run in.
func (r *Runner) Dir() string {
	return r.dir
}

// Submit runs line through the host shell and records it in the
// transcript. It blocks until the child exits. Blank input is ignored.
// A non-zero exit status is reported in Result, not as an error.
func (r *Runner) Submit(ctx context.Context, line string) (*Result, error) {
	command := strings.TrimSpace(line)
	if command == "" {
		return nil, nil
	}

	r.append(PromptPrefix + command)
	shell, flag, ok := HostShell(r.goos)
	if !ok {
		r.append(UnsupportedMessage)
		return nil, fmt.Errorf("%s: %w", r.goos, ErrUnsupportedPlatform)
	}

	res, err := r.run(ctx, shell, flag, command)
	if err != nil {
		r.append("! " + err.Error())
		return nil, err
	}
	if res.Stdout != "" {
		r.append(strings.TrimRight(res.Stdout, "\n"))
	}
	if res.Stderr != "" {
		r.append(strings.TrimRight(res.Stderr, "\n"))
	}
	r.showDir()
	return res, nil
}

func (r *Runner) run(ctx context.Context, shell, flag, command string) (*Result, error) {
	cmd := exec.CommandContext(ctx, shell, flag, command)
	cmd.Dir = r.dir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	r.mu.Lock()
	r.spawnCount++
	r.mu.Unlock()

	err := cmd.Run()
	res := &Result{
		Command: command,
		Stdout:  stdoutBuf.String(),
		Stderr:  stderrBuf.String(),
	}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		return nil, fmt.Errorf("run %q: %w", command, err)
	}
	return res, nil
}

func (r *Runner) showDir() {
	r.append(DirPrefix + r.dir)
}

func (r *Runner) append(line string) {
	r.mu.Lock()
	r.lines = append(r.lines, line)
	hook := r.onAppend
	r.mu.Unlock()
	if hook != nil {
		hook(line)
	}
}

// Lines returns a copy of the transcript.
func (r *Runner) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Text returns the transcript joined with newlines.
func (r *Runner) Text() string {
	return strings.Join(r.Lines(), "\n")
}

// Spawned returns how many child processes have been started.
func (r *Runner) Spawned() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.spawnCount
}
