package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCheck(t *testing.T, body string) (string, error) {
	t.Helper()
	testChdir(t, t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "error")

	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"check", "--projects", path})
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckCommand(t *testing.T) {
	out, err := runCheck(t, `{"projects": [
		{"id": "a", "title": "Alpha", "githubRepository": "https://github.com/ada/alpha"},
		{"id": "b", "title": "Beta"}
	]}`)
	require.NoError(t, err)
	assert.Contains(t, out, "2 projects ok")
}

func TestCheckCommandReportsMalformed(t *testing.T) {
	out, err := runCheck(t, `{"projects": [
		{"id": "a", "title": "Alpha", "githubRepository": "https://github.com/ada/alpha/"},
		{"id": "b", "title": "Beta", "githubRepository": "https://gitlab.com/bob/beta"}
	]}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 2 projects")
	assert.Contains(t, out, "a\tAlpha\thttps://github.com/ada/alpha/")
	assert.Contains(t, out, "b\tBeta\thttps://gitlab.com/bob/beta")
}

func TestCheckCommandMissingFile(t *testing.T) {
	testChdir(t, t.TempDir())
	cmd := newRootCmd()
	cmd.SetArgs([]string{"check", "--projects", filepath.Join(t.TempDir(), "nope.json")})
	assert.Error(t, cmd.Execute())
}

func TestServeStopsWhenContextDone(t *testing.T) {
	testChdir(t, t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("SERVER_ADDR", "127.0.0.1:0")
	t.Setenv("SESSION_KEY", "serve-test-signing-key")

	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"projects": [{"id": "a", "title": "Alpha"}]}`), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"serve", "--projects", path})
	assert.NoError(t, cmd.ExecuteContext(ctx))
}

func TestServeMissingProjects(t *testing.T) {
	testChdir(t, t.TempDir())
	t.Setenv("SERVER_ADDR", "127.0.0.1:0")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"serve", "--projects", filepath.Join(t.TempDir(), "nope.json")})
	assert.Error(t, cmd.ExecuteContext(context.Background()))
}
