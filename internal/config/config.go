package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/annel0/flatsquares/internal/logging"
	"github.com/annel0/flatsquares/internal/shape"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath задаёт путь к файлу конфигурации, если он не передан явно
	EnvConfigPath = "GEOMPROBE_CONFIG"
	// EnvLogLevel переопределяет log.level из файла
	EnvLogLevel = "GEOMPROBE_LOG_LEVEL"
)

// ErrInvalidConfig возвращается, если конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("invalid config")

// Config корневая структура конфигурации geomprobe.
type Config struct {
	Log     LogConfig      `yaml:"log"`
	Regions []RegionConfig `yaml:"regions"`
}

// LogConfig настройки логирования
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// RegionConfig описывает именованную прямоугольную область
type RegionConfig struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Rectangle преобразует описание области в прямоугольник
func (r RegionConfig) Rectangle() shape.Rectangle {
	return shape.NewRectangle(r.X, r.Y, r.Width, r.Height)
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать путь из ENV GEOMPROBE_CONFIG,
// а если и он не задан, возвращает Default().
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения конфигурации %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("ошибка разбора конфигурации %s: %w", path, err)
		}
	}

	// Уровень логирования из окружения имеет приоритет над файлом
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

// Validate проверяет уровень логирования и имена областей
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	seen := make(map[string]struct{}, len(c.Regions))
	for i, region := range c.Regions {
		name := strings.TrimSpace(region.Name)
		if name == "" {
			return fmt.Errorf("%w: region #%d has no name", ErrInvalidConfig, i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: duplicate region %q", ErrInvalidConfig, name)
		}
		seen[name] = struct{}{}
	}

	return nil
}
