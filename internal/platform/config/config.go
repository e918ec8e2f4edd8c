package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	EnvDataDir  = "CLEARPOINTS_DATA_DIR"
	EnvLogLevel = "CLEARPOINTS_LOG_LEVEL"

	// A terminal cell stands for this many field units. With the 48 unit
	// marker this draws markers as 6x3 cells.
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

type Config struct {
	DataDir    string
	DBPath     string
	LogPath    string
	FilePath   string
	LogLevel   string
	CellWidth  int
	CellHeight int
	History    bool
	// Seed fixes marker placement when non-zero.
	Seed int64
}

// fileConfig mirrors config.yaml. Absent keys keep their defaults.
type fileConfig struct {
	LogLevel   *string `yaml:"log_level"`
	CellWidth  *int    `yaml:"cell_width"`
	CellHeight *int    `yaml:"cell_height"`
	History    *bool   `yaml:"history"`
	Seed       *int64  `yaml:"seed"`
}

func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	level := os.Getenv(EnvLogLevel)
	if level == "" {
		level = "info"
	}
	return Config{
		DataDir:    dataDir,
		DBPath:     filepath.Join(dataDir, "clearpoints.db"),
		LogPath:    filepath.Join(dataDir, "clearpoints.log"),
		FilePath:   filepath.Join(dataDir, "config.yaml"),
		LogLevel:   level,
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
		History:    true,
	}, nil
}

// Load builds the defaults for dataDir and overlays config.yaml when present.
func Load(dataDir string) (Config, error) {
	cfg, err := New(dataDir)
	if err != nil {
		return Config{}, err
	}
	raw, err := os.ReadFile(cfg.FilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var file fileConfig
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if file.LogLevel != nil && os.Getenv(EnvLogLevel) == "" {
		cfg.LogLevel = strings.TrimSpace(*file.LogLevel)
	}
	if file.CellWidth != nil {
		cfg.CellWidth = *file.CellWidth
	}
	if file.CellHeight != nil {
		cfg.CellHeight = *file.CellHeight
	}
	if file.History != nil {
		cfg.History = *file.History
	}
	if file.Seed != nil {
		cfg.Seed = *file.Seed
	}
	if cfg.CellWidth <= 0 || cfg.CellHeight <= 0 {
		return Config{}, fmt.Errorf("cell size must be positive, got %dx%d", cfg.CellWidth, cfg.CellHeight)
	}
	return cfg, nil
}

// DefaultDataDir resolves the data directory from the environment, falling
// back to ~/.clearpoints.
func DefaultDataDir() string {
	if dir := strings.TrimSpace(os.Getenv(EnvDataDir)); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".clearpoints"
	}
	return filepath.Join(home, ".clearpoints")
}
