package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestBreedsCmd(t *testing.T) {
	out, _, err := run(t, "breeds")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "dog (default)", lines[0])
	assert.Equal(t, "horse", lines[5])
}

func TestCreateCmd_ValidPrintsListing(t *testing.T) {
	out, _, err := run(t, "create", "--log-level", "error",
		"--name", "Milou", "--breed", "dog", "--age", "6", "--weight", "473.6", "--height", "14.7")
	require.NoError(t, err)
	assert.Contains(t, out, "Milou\tdog\tage=6\tweight=473.6\theight=14.7")
}

func TestCreateCmd_InvalidNotifiesOnStderr(t *testing.T) {
	out, errOut, err := run(t, "create", "--log-level", "error",
		"--name", "Rex", "--age", "six", "--weight", "1", "--height", "1")
	require.ErrorIs(t, err, errRejected)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "The age is not valid")
}

func TestCreateCmd_UnknownBreed(t *testing.T) {
	_, _, err := run(t, "create", "--name", "Nemo", "--breed", "shark", "--age", "1", "--weight", "1", "--height", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid breed")
	assert.NotErrorIs(t, err, errRejected)
}

func TestCreateThenList_SQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "animals.db")
	common := []string{"--log-level", "error", "--storage-driver", "sqlite", "--dsn", dsn}

	_, _, err := run(t, append([]string{"create"}, append(common,
		"--name", "Milou", "--age", "6", "--weight", "473.6", "--height", "14.7")...)...)
	require.NoError(t, err)

	out, _, err := run(t, append([]string{"list"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Milou\tdog")
}
