package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Source is one documentation root and the URL its files are published under.
type Source struct {
	Path string `yaml:"path"`
	URL  string `yaml:"url"`
}

type Config struct {
	Port string `yaml:"port"`

	// Active theme location. Sources default to subfolders of it.
	ThemeDir string `yaml:"theme_dir"`
	ThemeURL string `yaml:"theme_url"`

	Docs     Source `yaml:"docs"`
	Glossary Source `yaml:"glossary"`

	// Recursion cap for tree builds, 0 disables it.
	MaxDepth int `yaml:"max_depth"`

	LogLevel string `yaml:"log_level"`
}

// Load reads .env from the working directory, then the YAML file named by
// THEME_DOCS_CONFIG (if any), then the process environment.
func Load() (Config, error) {
	return LoadFiles(".env", os.Getenv("THEME_DOCS_CONFIG"))
}

// LoadFiles is Load with explicit file locations. Empty names are skipped, and a
// missing .env file is not an error. Values already present in the process
// environment are never overwritten by the .env file.
func LoadFiles(envFile, yamlFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	cfg := Config{
		Port:     "8090",
		ThemeDir: ".",
		ThemeURL: "/theme",
		MaxDepth: 32,
		LogLevel: "info",
	}

	if yamlFile != "" {
		data, err := os.ReadFile(yamlFile)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", yamlFile, err)
		}
	}

	cfg.Port = envOr("PORT", cfg.Port)
	cfg.ThemeDir = envOr("THEME_DIR", cfg.ThemeDir)
	cfg.ThemeURL = envOr("THEME_URL", cfg.ThemeURL)
	cfg.Docs.Path = envOr("THEME_DOCS_PATH_TO_DOCS", cfg.Docs.Path)
	cfg.Docs.URL = envOr("THEME_DOCS_URI_TO_DOCS", cfg.Docs.URL)
	cfg.Glossary.Path = envOr("THEME_DOCS_PATH_TO_GLOSSARY", cfg.Glossary.Path)
	cfg.Glossary.URL = envOr("THEME_DOCS_URI_TO_GLOSSARY", cfg.Glossary.URL)
	cfg.MaxDepth = envInt("THEME_DOCS_MAX_DEPTH", cfg.MaxDepth)
	cfg.LogLevel = envOr("LOG_LEVEL", cfg.LogLevel)

	if abs, err := filepath.Abs(cfg.ThemeDir); err == nil {
		cfg.ThemeDir = abs
	}
	if cfg.Docs.Path == "" {
		cfg.Docs.Path = cfg.ThemeDir + "/documentation"
	}
	if cfg.Docs.URL == "" {
		cfg.Docs.URL = cfg.ThemeURL + "/documentation"
	}
	if cfg.Glossary.Path == "" {
		cfg.Glossary.Path = cfg.ThemeDir + "/glossary"
	}
	if cfg.Glossary.URL == "" {
		cfg.Glossary.URL = cfg.ThemeURL + "/glossary"
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Docs.Path == "" || c.Docs.URL == "" {
		return fmt.Errorf("docs path and url are required")
	}
	if c.Glossary.Path == "" || c.Glossary.URL == "" {
		return fmt.Errorf("glossary path and url are required")
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("THEME_DOCS_MAX_DEPTH must not be negative, got %d", c.MaxDepth)
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return nil
}

// Level returns the configured log level, falling back to info.
func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
