// SPDX-License-Identifier: EPL-2.0

// Package config loads the audiostudio YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Audio  AudioConfig  `yaml:"audio"`
	Speech SpeechConfig `yaml:"speech"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// AudioConfig describes the WAV files produced by convert.
type AudioConfig struct {
	// SampleRate of 0 keeps the source rate.
	SampleRate int  `yaml:"sample_rate"`
	Mono       bool `yaml:"mono"`
}

type SpeechConfig struct {
	Voice      string  `yaml:"voice"`
	Emotion    string  `yaml:"emotion"`
	Speed      float64 `yaml:"speed"`
	Pitch      float64 `yaml:"pitch"`
	SampleRate int     `yaml:"sample_rate"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

// Load reads a YAML file, expanding ${VAR} references from the environment.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML bytes, fills defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	expanded := os.Expand(string(data), os.Getenv)

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	setDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

func setDefaults(cfg *Config) {
	if cfg.Speech.Voice == "" {
		cfg.Speech.Voice = "male-deep"
	}
	if cfg.Speech.Emotion == "" {
		cfg.Speech.Emotion = "neutral"
	}
	if cfg.Speech.Speed == 0 {
		cfg.Speech.Speed = 1.0
	}
	if cfg.Speech.SampleRate == 0 {
		cfg.Speech.SampleRate = 44100
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "."
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// Validate checks numeric ranges. Voice and emotion names are checked by the
// speech package when a request is built.
func (c *Config) Validate() error {
	if c.Audio.SampleRate < 0 {
		return fmt.Errorf("%w: audio.sample_rate must not be negative, got %d", ErrInvalidConfig, c.Audio.SampleRate)
	}
	if c.Speech.SampleRate < 0 {
		return fmt.Errorf("%w: speech.sample_rate must not be negative, got %d", ErrInvalidConfig, c.Speech.SampleRate)
	}
	if c.Speech.Speed < 0.5 || c.Speech.Speed > 2 {
		return fmt.Errorf("%w: speech.speed must be in [0.5, 2], got %g", ErrInvalidConfig, c.Speech.Speed)
	}
	if c.Speech.Pitch < -10 || c.Speech.Pitch > 10 {
		return fmt.Errorf("%w: speech.pitch must be in [-10, 10], got %g", ErrInvalidConfig, c.Speech.Pitch)
	}
	return nil
}
