package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const localConfigPath = "configs/snake.yaml"

// LoadSnake loads the game configuration.
// Search order: customPath -> ~/.snake/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
// An explicit customPath must exist and parse, the other locations are skipped on error.
func LoadSnake(customPath string) (SnakeConfig, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath("snake.yaml"), localConfigPath} {
		if path == "" {
			continue
		}
		if cfg, err := LoadFile(path); err == nil {
			return cfg, cfg.Validate()
		}
	}

	cfg, err := parse(defaultSnakeYAML)
	if err != nil {
		cfg = DefaultSnakeConfig() // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// LoadFile reads and parses a single YAML file on top of the defaults.
// It does not validate.
func LoadFile(path string) (SnakeConfig, error) {
	data, err := os.ReadFile(ExpandHome(path))
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// ResolvePath returns the file LoadSnake would read, or "" when the
// embedded default is used.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return ExpandHome(customPath)
	}
	for _, path := range []string{userConfigPath("snake.yaml"), localConfigPath} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}
