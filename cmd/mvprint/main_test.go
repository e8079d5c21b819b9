package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/seqsense/mvgl/mat"
)

func TestRun(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-config", "testdata/camera.yaml", "-flat"}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "view:\n1 0 0 0\n0 1 0 0\n0 0 1 -10\n0 0 0 1\n")
	assert.Contains(t, out, "projection:\n0.5 0 0 0\n0 1 0 0\n0 0 -0.1 -1.1\n0 0 0 1\n")
	assert.Equal(t, 3, strings.Count(out, " (flat): ["))
	assert.Contains(t, out, " -10 1]\nprojection:\n")
	assert.Empty(t, stderr.String())
}

func TestRun_yaml(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-config", "testdata/camera.yaml", "-yaml"}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	var out map[string]mat.Mat4
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &out))
	assert.Equal(t, mat.Translate(0, 0, -10), out["view"])
	assert.Len(t, out, 3)
}

func TestRun_verbose(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-config", "testdata/camera.yaml", "-v"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "level=DEBUG msg=\"Config loaded\"")
}

func TestRun_error(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-config", "testdata/missing.yaml"}, &stdout, &stderr)
	assert.Error(t, err)
	assert.True(t, strings.Contains(stderr.String(), "level=ERROR"))
	assert.Empty(t, stdout.String())
}
