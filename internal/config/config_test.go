package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "THEME_DIR", "THEME_URL",
	"THEME_DOCS_PATH_TO_DOCS", "THEME_DOCS_URI_TO_DOCS",
	"THEME_DOCS_PATH_TO_GLOSSARY", "THEME_DOCS_URI_TO_GLOSSARY",
	"THEME_DOCS_MAX_DEPTH", "LOG_LEVEL",
}

// unsetEnv clears every variable Load reads and restores them after the test.
func unsetEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadFiles_Defaults(t *testing.T) {
	unsetEnv(t)
	theme := t.TempDir()
	t.Setenv("THEME_DIR", theme)

	cfg, err := LoadFiles("", "")
	require.NoError(t, err)

	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, theme+"/documentation", cfg.Docs.Path)
	assert.Equal(t, "/theme/documentation", cfg.Docs.URL)
	assert.Equal(t, theme+"/glossary", cfg.Glossary.Path)
	assert.Equal(t, "/theme/glossary", cfg.Glossary.URL)
	assert.Equal(t, 32, cfg.MaxDepth)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFiles_YAMLThenEnv(t *testing.T) {
	unsetEnv(t)
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "theme-docs.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
port: "9100"
theme_url: https://example.com/wp-content/themes/acme
docs:
  path: /srv/acme/documentation
glossary:
  path: /srv/acme/glossary
  url: https://cdn.example.com/glossary
max_depth: 4
log_level: debug
`), 0o644))

	t.Setenv("PORT", "9200")
	t.Setenv("THEME_DOCS_URI_TO_GLOSSARY", "https://override.example.com/glossary")

	cfg, err := LoadFiles("", yamlPath)
	require.NoError(t, err)

	assert.Equal(t, "9200", cfg.Port)
	assert.Equal(t, "/srv/acme/documentation", cfg.Docs.Path)
	assert.Equal(t, "https://example.com/wp-content/themes/acme/documentation", cfg.Docs.URL)
	assert.Equal(t, "/srv/acme/glossary", cfg.Glossary.Path)
	assert.Equal(t, "https://override.example.com/glossary", cfg.Glossary.URL)
	assert.Equal(t, 4, cfg.MaxDepth)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestLoadFiles_EnvFileDoesNotOverride(t *testing.T) {
	unsetEnv(t)
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("PORT=7000\nTHEME_DOCS_URI_TO_DOCS=https://cdn.example.com/docs\n"), 0o644))

	t.Setenv("PORT", "9000")

	cfg, err := LoadFiles(envPath, "")
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://cdn.example.com/docs", cfg.Docs.URL)
}

func TestLoadFiles_MissingEnvFileIgnored(t *testing.T) {
	unsetEnv(t)
	_, err := LoadFiles(filepath.Join(t.TempDir(), ".env"), "")
	assert.NoError(t, err)
}

func TestLoadFiles_MissingYAMLFile(t *testing.T) {
	unsetEnv(t)
	_, err := LoadFiles("", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFiles_InvalidYAML(t *testing.T) {
	unsetEnv(t)
	yamlPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("docs: [unterminated"), 0o644))

	_, err := LoadFiles("", yamlPath)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Port:     "8090",
		Docs:     Source{Path: "/a/documentation", URL: "/theme/documentation"},
		Glossary: Source{Path: "/a/glossary", URL: "/theme/glossary"},
		LogLevel: "info",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Port = "" }},
		{"empty docs url", func(c *Config) { c.Docs.URL = "" }},
		{"empty glossary path", func(c *Config) { c.Glossary.Path = "" }},
		{"negative depth", func(c *Config) { c.MaxDepth = -1 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
