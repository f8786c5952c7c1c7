package runner

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if _, _, ok := HostShell(runtime.GOOS); !ok || runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
}

func TestNewShowsDirectory(t *testing.T) {
	dir := t.TempDir()
	r := New(WithDir(dir))
	assert.Equal(t, []string{DirPrefix + dir}, r.Lines())
	assert.Equal(t, 0, r.Spawned())
}

func TestBlankInputIgnored(t *testing.T) {
	r := New(WithDir(t.TempDir()))
	before := r.Lines()
	for _, in := range []string{"", "   ", "\t\n"} {
		res, err := r.Submit(context.Background(), in)
		assert.NoError(t, err)
		assert.Nil(t, res)
	}
	assert.Equal(t, before, r.Lines())
	assert.Equal(t, 0, r.Spawned())
}

func TestSubmitCapturesStreams(t *testing.T) {
	skipWithoutShell(t)
	dir := t.TempDir()
	r := New(WithDir(dir))

	res, err := r.Submit(context.Background(), "  echo out; echo err 1>&2  ")
	require.NoError(t, err)
	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "err\n", res.Stderr)
	assert.Equal(t, 0, res.ExitCode)

	assert.Equal(t, []string{
		DirPrefix + dir,
		PromptPrefix + "echo out; echo err 1>&2",
		"out",
		"err",
		DirPrefix + dir,
	}, r.Lines())
	assert.Equal(t, 1, r.Spawned())
}

func TestSubmitRunsInDir(t *testing.T) {
	skipWithoutShell(t)
	dir := t.TempDir()
	r := New(WithDir(dir))
	res, err := r.Submit(context.Background(), "pwd -P")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Stdout)
}

func TestNonZeroExitIsNotAnError(t *testing.T) {
	skipWithoutShell(t)
	r := New(WithDir(t.TempDir()))
	res, err := r.Submit(context.Background(), "exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "", res.Stdout)
}

func TestUnsupportedPlatform(t *testing.T) {
	dir := t.TempDir()
	r := New(WithDir(dir), WithGOOS("plan9"))
	res, err := r.Submit(context.Background(), "ls")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
	assert.Equal(t, []string{DirPrefix + dir, PromptPrefix + "ls", UnsupportedMessage}, r.Lines())
	assert.Equal(t, 0, r.Spawned())
}

func TestAppendHook(t *testing.T) {
	var seen []string
	dir := t.TempDir()
	r := New(WithDir(dir), WithGOOS("plan9"), WithAppendHook(func(line string) {
		seen = append(seen, line)
	}))
	_, _ = r.Submit(context.Background(), "x")
	assert.Equal(t, r.Lines(), seen)
}

func TestHostShell(t *testing.T) {
	shell, flag, ok := HostShell("windows")
	assert.True(t, ok)
	assert.Equal(t, "cmd", shell)
	assert.Equal(t, "/C", flag)

	shell, flag, ok = HostShell("linux")
	assert.True(t, ok)
	assert.Equal(t, "/bin/sh", shell)
	assert.Equal(t, "-c", flag)

	_, _, ok = HostShell("js")
	assert.False(t, ok)
}
