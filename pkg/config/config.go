package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/arnavshah/rotation-scheduler/pkg/models"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultDataPath is the sqlite file used when no DATABASE_URL is set
const DefaultDataPath = "shift_usage.db"

// Config holds process-wide settings for the server and CLI
type Config struct {
	Port        string   `yaml:"port"`
	DatabaseURL string   `yaml:"database_url"`
	DataPath    string   `yaml:"data_path"`
	LogLevel    string   `yaml:"log_level"`
	Agents      []string `yaml:"roster"`
}

// Default returns the built-in settings
func Default() Config {
	defaults := models.DefaultAgents()
	agents := make([]string, len(defaults))
	for i, a := range defaults {
		agents[i] = string(a)
	}
	return Config{
		Port:     "8000",
		DataPath: DefaultDataPath,
		LogLevel: "info",
		Agents:   agents,
	}
}

// LoadEnvFile loads the first .env found in the working directory or its parents
func LoadEnvFile() {
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}
}

// Load builds the config from defaults, then SHIFT_CONFIG (YAML), then the environment
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("SHIFT_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)

	if _, err := cfg.Roster(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("DATA_PATH"); v != "" {
		cfg.DataPath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("ROSTER"); v != "" {
		var agents []string
		for _, name := range strings.Split(v, ",") {
			agents = append(agents, strings.TrimSpace(name))
		}
		cfg.Agents = agents
	}
}

// Roster validates the configured agent names
func (c *Config) Roster() (models.Roster, error) {
	agents := make([]models.Agent, len(c.Agents))
	for i, name := range c.Agents {
		agents[i] = models.Agent(name)
	}
	r, err := models.NewRoster(agents)
	if err != nil {
		return models.Roster{}, fmt.Errorf("config: %w", err)
	}
	return r, nil
}
