package logger

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds logging configuration
type Config struct {
	Level          string
	ConsoleEnabled bool
	ConsoleFormat  string
	FileEnabled    bool
	FilePath       string
	FileFormat     string
	FileMaxSizeMB  int
	FileMaxBackups int
	FileMaxAgeDays int
}

// fileConfig mirrors the logging: block. Bools are pointers so that an
// omitted key keeps its default.
type fileConfig struct {
	Logging struct {
		Level          string `yaml:"level"`
		ConsoleEnabled *bool  `yaml:"console_enabled"`
		ConsoleFormat  string `yaml:"console_format"`
		FileEnabled    *bool  `yaml:"file_enabled"`
		FilePath       string `yaml:"file_path"`
		FileFormat     string `yaml:"file_format"`
		FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
		FileMaxBackups int    `yaml:"file_max_backups"`
		FileMaxAgeDays int    `yaml:"file_max_age_days"`
	} `yaml:"logging"`
}

// DefaultConfig logs text to the console at INFO
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		FileEnabled:    false,
		FilePath:       "logs/terrain.log",
		FileFormat:     "text",
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}
}

// LoadConfig loads logging configuration from a YAML file and applies
// environment variable overrides. A missing file yields the defaults.
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := config.merge(data); err != nil {
				return DefaultConfig(), fmt.Errorf("parse %s: %w", configPath, err)
			}
		case !os.IsNotExist(err):
			return config, err
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.Level = logLevel
	}

	if consoleFormat := os.Getenv("LOG_CONSOLE_FORMAT"); consoleFormat != "" {
		config.ConsoleFormat = consoleFormat
	}

	if fileEnabled := os.Getenv("LOG_FILE_ENABLED"); fileEnabled != "" {
		if enabled, err := strconv.ParseBool(fileEnabled); err == nil {
			config.FileEnabled = enabled
		}
	}

	if filePath := os.Getenv("LOG_FILE_PATH"); filePath != "" {
		config.FilePath = filePath
	}

	return config, nil
}

// merge overlays the keys present in data onto c
func (c *Config) merge(data []byte) error {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}
	l := fc.Logging

	if l.Level != "" {
		c.Level = l.Level
	}
	if l.ConsoleEnabled != nil {
		c.ConsoleEnabled = *l.ConsoleEnabled
	}
	if l.ConsoleFormat != "" {
		c.ConsoleFormat = l.ConsoleFormat
	}
	if l.FileEnabled != nil {
		c.FileEnabled = *l.FileEnabled
	}
	if l.FilePath != "" {
		c.FilePath = l.FilePath
	}
	if l.FileFormat != "" {
		c.FileFormat = l.FileFormat
	}
	if l.FileMaxSizeMB > 0 {
		c.FileMaxSizeMB = l.FileMaxSizeMB
	}
	if l.FileMaxBackups > 0 {
		c.FileMaxBackups = l.FileMaxBackups
	}
	if l.FileMaxAgeDays > 0 {
		c.FileMaxAgeDays = l.FileMaxAgeDays
	}
	return nil
}
