package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/wiresim"
	"github.com/db47h/wiresim/wiretest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	path := writeFile(t, "sample.txt", wiretest.Sample)

	out, err := run(t, "eval", path, "d", "e", "h")
	require.NoError(t, err)
	assert.Equal(t, "d=72\ne=507\nh=65412\n", out)

	out, err = run(t, "eval", path)
	require.NoError(t, err)
	assert.Equal(t, "d=72\ne=507\nf=492\ng=114\nh=65412\ni=65079\nx=123\ny=456\n", out)
}

func TestEval_set(t *testing.T) {
	path := writeFile(t, "feedback.txt", `
b AND c -> a
x LSHIFT 1 -> b
44 -> c
13 -> x
`)
	out, err := run(t, "eval", path, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "a=8\nb=26\n", out)

	out, err = run(t, "eval", "--set", "b=a", "--set", "c=255", path, "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, "a=8\nb=8\nc=255\n", out)

	_, err = run(t, "eval", "--set", "q=a", path)
	assert.ErrorIs(t, err, wiresim.ErrUnknownWire)
	_, err = run(t, "eval", "--set", "b=zz", path)
	assert.ErrorIs(t, err, wiresim.ErrUnknownWire)
	_, err = run(t, "eval", "--set", "b", path)
	assert.Error(t, err)
}

func TestEval_config(t *testing.T) {
	path := writeFile(t, "feedback.txt", "b OR 1 -> a\n6 -> b\n")
	cfg := writeFile(t, "wiresim.yaml", `
log_level: error
queries: [a]
overrides:
  - wire: b
    from: a
`)
	out, err := run(t, "--config", cfg, "eval", path)
	require.NoError(t, err)
	assert.Equal(t, "a=7\n", out)

	// command line queries win over the configuration
	out, err = run(t, "--config", cfg, "eval", path, "b")
	require.NoError(t, err)
	assert.Equal(t, "b=7\n", out)

	bad := writeFile(t, "bad.yaml", "log_level: loud\n")
	_, err = run(t, "--config", bad, "eval", path)
	assert.Error(t, err)
}

func TestEval_errors(t *testing.T) {
	_, err := run(t, "eval", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, err = run(t, "eval", writeFile(t, "bad.txt", "1 XOR 2 -> a\n"))
	assert.ErrorIs(t, err, wiresim.ErrMalformed)

	_, err = run(t, "eval", writeFile(t, "loop.txt", "b -> a\na -> b\n"))
	assert.ErrorIs(t, err, wiresim.ErrCycle)

	_, err = run(t, "eval", writeFile(t, "ok.txt", "1 -> a\n"), "nope")
	assert.ErrorIs(t, err, wiresim.ErrUnknownWire)

	_, err = run(t, "eval")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	path := writeFile(t, "sample.txt", wiretest.Sample)
	out, err := run(t, "check", path)
	require.NoError(t, err)
	assert.Equal(t, path+": 8 instructions, 1 passes\n", out)

	_, err = run(t, "-v", "check", writeFile(t, "dup.txt", "1 -> a\n2 -> a\n"))
	assert.ErrorIs(t, err, wiresim.ErrMalformed)
}
