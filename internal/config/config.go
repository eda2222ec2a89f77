package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxParticles = 5000
	DefaultTimeScale    = 1.0
	DefaultFrameRate    = 30
)

type Config struct {
	MaxParticles int     `yaml:"max_particles"`
	Seed         int64   `yaml:"seed"`
	TimeScale    float64 `yaml:"time_scale"`
	FrameRate    int     `yaml:"frame_rate"`
}

func DefaultConfig() *Config {
	return &Config{
		MaxParticles: DefaultMaxParticles,
		TimeScale:    DefaultTimeScale,
		FrameRate:    DefaultFrameRate,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
