package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	testChdir(t, t.TempDir())
	for _, k := range []string{"SERVER_ADDR", "DATA_PATH", "APP_ENV", "LOG_LEVEL", "SESSION_KEY"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "data", cfg.DataPath)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, filepath.Join("data", "projects.json"), cfg.ProjectsFile())
	assert.Len(t, cfg.SessionKey, 32)
	assert.NotEqual(t, cfg.SessionKey, Load().SessionKey)
}

func TestLoadFromEnv(t *testing.T) {
	testChdir(t, t.TempDir())
	t.Setenv("SERVER_ADDR", ":9000")
	t.Setenv("DATA_PATH", "/srv/data")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SESSION_KEY", "s3cret-signing-key")

	cfg := Load()
	assert.Equal(t, ":9000", cfg.ServerAddr)
	assert.Equal(t, "/srv/data", cfg.DataPath)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []byte("s3cret-signing-key"), cfg.SessionKey)
}

func writeProjects(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadProjects(t *testing.T) {
	path := writeProjects(t, `{"projects": [
		{"id": "widgets", "title": "Widgets", "tags": ["go"], "createdAt": "2024-01-02T03:04:05Z",
		 "githubRepository": "https://github.com/acme/widgets", "liveUrl": null},
		{"title": "Untitled"}
	]}`)

	list, err := LoadProjects(path)
	require.NoError(t, err)
	require.Len(t, list.Projects, 2)

	first := list.Projects[0]
	assert.Equal(t, "widgets", first.ID)
	require.NotNil(t, first.GithubRepository)
	assert.Equal(t, "https://github.com/acme/widgets", *first.GithubRepository)
	assert.Nil(t, first.LiveURL)
	assert.Equal(t, 2024, first.CreatedAt.Year())

	second := list.Projects[1]
	_, err = uuid.Parse(second.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{}, second.Tags)
}

func TestLoadProjectsErrors(t *testing.T) {
	_, err := LoadProjects(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadProjects(writeProjects(t, `{"projects": [`))
	assert.Error(t, err)

	_, err = LoadProjects(writeProjects(t, `{"projects": [{"id": "a"}, {"id": "a"}]}`))
	assert.ErrorContains(t, err, "duplicate project id")
}
