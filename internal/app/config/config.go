package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the explicit application configuration, constructed once from
// the YAML file and passed by reference to every component that needs it.
type Config struct {
	Subdir        string        `yaml:"subdir"`
	OutputDir     string        `yaml:"output_dir"`
	DBPath        string        `yaml:"db_path"`
	RetentionDays int           `yaml:"retention_days"`
	Trim          TrimConfig    `yaml:"trim"`
	Whisper       WhisperConfig `yaml:"whisper"`
	Server        ServerConfig  `yaml:"server,omitempty"`
	Timeouts      TimeoutConfig `yaml:"timeouts,omitempty"`
}

// TrimConfig are the ffmpeg silence-trimming tunables.
type TrimConfig struct {
	ThresholdDB     int `yaml:"threshold_db"`
	MinSilenceLenMs int `yaml:"min_silence_len_ms"`
	KeepSilenceMs   int `yaml:"keep_silence_ms"`
}

// WhisperConfig configures the external whisper.cpp engine.
type WhisperConfig struct {
	Binary     string `yaml:"binary"`
	Model      string `yaml:"model"`
	Language   string `yaml:"language"`
	BeamSize   int    `yaml:"beam_size"`
	MaxThreads int    `yaml:"max_threads"`
	VAD        bool   `yaml:"vad"`
	VADModel   string `yaml:"vad_model,omitempty"`
}

// ServerConfig configures the viewer HTTP server.
type ServerConfig struct {
	Host string `yaml:"host,omitempty"`
	Port string `yaml:"port,omitempty"`
}

// TimeoutConfig bounds the external engine invocations so a hung process
// fails the file instead of blocking the run.
type TimeoutConfig struct {
	TrimSec       int `yaml:"trim_sec,omitempty"`
	TranscribeSec int `yaml:"transcribe_sec,omitempty"`
}

// Load reads and validates the configuration file. Environment variables in
// path values are expanded.
func Load(configPath string) (*Config, error) {
	configPath = os.ExpandEnv(configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.expandEnvironmentVariables()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) expandEnvironmentVariables() {
	c.OutputDir = os.ExpandEnv(c.OutputDir)
	c.DBPath = os.ExpandEnv(c.DBPath)
	c.Whisper.Binary = os.ExpandEnv(c.Whisper.Binary)
	c.Whisper.Model = os.ExpandEnv(c.Whisper.Model)
	c.Whisper.VADModel = os.ExpandEnv(c.Whisper.VADModel)
}

func (c *Config) applyDefaults() {
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.BeamSize == 0 {
		c.Whisper.BeamSize = 5
	}
	if c.Whisper.MaxThreads == 0 {
		c.Whisper.MaxThreads = 4
	}
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Timeouts.TrimSec == 0 {
		c.Timeouts.TrimSec = 120
	}
	if c.Timeouts.TranscribeSec == 0 {
		c.Timeouts.TranscribeSec = 900
	}
}

func (c *Config) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"subdir", c.Subdir},
		{"output_dir", c.OutputDir},
		{"db_path", c.DBPath},
		{"whisper.binary", c.Whisper.Binary},
		{"whisper.model", c.Whisper.Model},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("config: %s is required", r.name)
		}
	}
	if c.RetentionDays < 0 {
		return fmt.Errorf("config: retention_days must not be negative")
	}
	if c.Whisper.VAD && c.Whisper.VADModel == "" {
		return fmt.Errorf("config: whisper.vad_model is required when whisper.vad is enabled")
	}
	return nil
}
