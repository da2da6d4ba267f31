package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/joho/godotenv"

	"projectmate.net/internal/models"
)

// Config holds all application configuration
type Config struct {
	ServerAddr string
	DataPath   string
	Env        string
	LogLevel   string
	SessionKey []byte
}

// Load reads .env (if any) and the environment
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerAddr: envOr("SERVER_ADDR", ":8080"),
		DataPath:   envOr("DATA_PATH", "data"),
		Env:        envOr("APP_ENV", "local"),
		LogLevel:   envOr("LOG_LEVEL", "info"),
		SessionKey: sessionKey(),
	}
}

// sessionKey signs the toast cookie. Without SESSION_KEY a random key is
// used, so pending toasts do not survive a restart
func sessionKey() []byte {
	if v := strings.TrimSpace(os.Getenv("SESSION_KEY")); v != "" {
		return []byte(v)
	}
	return securecookie.GenerateRandomKey(32)
}

// ProjectsFile is where the project list lives
func (c *Config) ProjectsFile() string {
	return filepath.Join(c.DataPath, "projects.json")
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// LoadProjects reads and parses a projects file. Projects without an ID are
// given a random one
func LoadProjects(path string) (*models.ProjectList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}

	var projects models.ProjectList
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	seen := make(map[string]bool, len(projects.Projects))
	for i := range projects.Projects {
		p := &projects.Projects[i]
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("parse %s: duplicate project id %q", filepath.Base(path), p.ID)
		}
		seen[p.ID] = true
		if p.Tags == nil {
			p.Tags = []string{}
		}
	}

	return &projects, nil
}
