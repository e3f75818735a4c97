package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/dnninfer/tensor"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// exportScenario writes the 3x2 layer used across these tests.
func exportScenario(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "model")
	w := writeFile(t, tmp, "w.txt", "1 0\n0 1\n1 1\n")
	b := writeFile(t, tmp, "b.txt", "0.5 -0.5\n")

	_, _, err := run(t, "export", "--dir", dir, "--layer", "2", "--in", "3", "--out", "2",
		"--weights-text", w, "--bias-text", b)
	require.NoError(t, err)
	return dir
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dnninfer "+version+"\n", out)
}

func TestExportAndForwardText(t *testing.T) {
	dir := exportScenario(t)
	input := writeFile(t, t.TempDir(), "x.txt", "1 2 3\n0 0 0\n")

	out, _, err := run(t, "forward", "--dir", dir, "--layer", "2", "--in", "3", "--out", "2",
		"--input", input, "--text")
	require.NoError(t, err)
	assert.Equal(t, "4.5 4.5\n0.5 -0.5\n", out)
}

func TestForwardRawOutput(t *testing.T) {
	dir := exportScenario(t)
	tmp := t.TempDir()

	x, err := tensor.FromSlice([]float32{1, 2, 3}, 1, 3)
	require.NoError(t, err)
	input := filepath.Join(tmp, "x.data")
	require.NoError(t, writeRawFile(input, x))
	output := filepath.Join(tmp, "y.data")

	_, _, err = run(t, "forward", "--dir", dir, "--layer", "2", "--in", "3", "--out", "2",
		"--input", input, "--output", output, "--gelu", "exp", "--workers", "2")
	require.NoError(t, err)

	y, err := readInput(output, 2, false)
	require.NoError(t, err)
	for _, v := range y.Data() {
		assert.InDelta(t, 4.5, v, 1e-4)
	}
}

func TestForwardMissingParameters(t *testing.T) {
	input := writeFile(t, t.TempDir(), "x.txt", "1 2 3\n")
	dir := t.TempDir()

	_, _, err := run(t, "forward", "--dir", dir, "--layer", "5", "--in", "3", "--out", "2",
		"--input", input, "--text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layer 5")
	assert.Contains(t, err.Error(), "linear_5_weights_rowmajor_3_2.data")
}

func TestForwardBadInputSize(t *testing.T) {
	dir := exportScenario(t)
	input := writeFile(t, t.TempDir(), "x.data", "12345")

	_, _, err := run(t, "forward", "--dir", dir, "--layer", "2", "--in", "3", "--out", "2",
		"--input", input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a positive multiple of 12")
}

func TestForwardUnknownKernel(t *testing.T) {
	_, _, err := run(t, "forward", "--in", "3", "--out", "2", "--input", "x", "--gelu", "relu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown GELU kernel")
}

func TestPaths(t *testing.T) {
	dir := exportScenario(t)

	out, _, err := run(t, "paths", "--dir", dir, "--layer", "2", "--in", "3", "--out", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "linear_2_weights_rowmajor_3_2.data ok")
	assert.Contains(t, lines[1], "linear_2_bias_2.data ok")

	out, _, err = run(t, "paths", "--dir", dir, "--layer", "3", "--in", "3", "--out", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "missing")
}

func TestExportWrongCount(t *testing.T) {
	tmp := t.TempDir()
	w := writeFile(t, tmp, "w.txt", "1 2 3")
	b := writeFile(t, tmp, "b.txt", "1 2")

	_, _, err := run(t, "export", "--dir", tmp, "--in", "3", "--out", "2",
		"--weights-text", w, "--bias-text", b)
	require.Error(t, err)
	assert.ErrorIs(t, err, tensor.ErrShape)
}

func TestVerboseLogsLoad(t *testing.T) {
	dir := exportScenario(t)
	input := writeFile(t, t.TempDir(), "x.txt", "1 2 3\n")

	_, stderr, err := run(t, "-v", "forward", "--dir", dir, "--layer", "2", "--in", "3", "--out", "2",
		"--input", input, "--text")
	require.NoError(t, err)
	assert.Contains(t, stderr, "loaded layer parameters")
	assert.Contains(t, stderr, "forward complete")
}

func TestWriteRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeRows(&buf, []float32{1, 2.5, -3, 0}, 2))
	assert.Equal(t, "1 2.5\n-3 0\n", buf.String())
}
