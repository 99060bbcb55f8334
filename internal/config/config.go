package config

import (
	"os"
	"runtime"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"pokersim/internal/util"
)

// Config provides configuration for the simulator and the evaluation server
type Config struct {
	loaded      bool
	Players     int    `yaml:"players" envconfig:"players"`
	Simulations int    `yaml:"simulations" envconfig:"simulations"`
	Workers     int    `yaml:"workers" envconfig:"workers"`
	Seed        int64  `yaml:"seed" envconfig:"seed"`
	LongFormat  bool   `yaml:"longFormat" envconfig:"long_format"`
	Output      string `yaml:"output" envconfig:"output"`
	Addr        string `yaml:"addr" envconfig:"addr"`

	// PGDSN enables run history when set
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`

	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		Players:     9,
		Simulations: 1000,
		Workers:     runtime.GOMAXPROCS(0),
		Addr:        ":5000",

		MigrationsPath: "./sql",
	}
	cfg.Log.Level = "info"

	return cfg
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values come from DefaultConfig(), then the YAML file named by POKERSIM_CONFIG_FILE
// (a missing file is skipped), then POKERSIM_* environment variables.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("POKERSIM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("pokersim", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
