package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitThenBuild(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "build", "paper")
	require.NoError(t, os.MkdirAll(filepath.Dir(out), 0755))

	rootCmd.SetArgs([]string{"init", dir})
	require.NoError(t, rootCmd.Execute())
	assert.FileExists(t, filepath.Join(dir, "aastex.yaml"))

	rootCmd.SetArgs([]string{"build", filepath.Join(dir, "aastex.yaml"), "-o", out})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out + ".tex")
	require.NoError(t, err)
	assert.Contains(t, string(data), `\title{Title of the Paper}`)
}
