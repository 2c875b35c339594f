package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

const (
	envConfigPath = "HABITS_CONFIG"
	defaultPath   = "config.yaml"
)

type Config struct {
	DBPath      string `yaml:"db_path"`
	ListenAddr  string `yaml:"listen_addr"`
	APIBaseURL  string `yaml:"api_base_url"`
	LogLevel    string `yaml:"log_level"`
	NotifyEmail string `yaml:"notify_email"`
}

func Default() Config {
	return Config{
		DBPath:     "streaks.db",
		ListenAddr: ":8080",
		APIBaseURL: "http://localhost:8080",
		LogLevel:   "info",
	}
}

// Load reads the yaml config named by HABITS_CONFIG, falling back to
// config.yaml. A missing file at the default path just yields defaults; a
// missing file named explicitly via the env var is an error.
func Load() (Config, error) {
	path := os.Getenv(envConfigPath)
	explicit := path != ""
	if !explicit {
		path = defaultPath
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
