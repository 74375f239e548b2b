package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "ZOTEROCONV_CONFIG"
	inputPathEnv  = "ZOTEROCONV_INPUT"
	outputPathEnv = "ZOTEROCONV_OUTPUT"
	formatEnv     = "ZOTEROCONV_FORMAT"
	logLevelEnv   = "ZOTEROCONV_LOG_LEVEL"
)

// Config holds all settings required for one conversion run.
type Config struct {
	Input   string        `yaml:"input"`
	Output  string        `yaml:"output"`
	Format  string        `yaml:"format"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides. An empty path falls back to the ZOTEROCONV_CONFIG variable.
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(inputPathEnv); v != "" {
		c.Input = v
	}

	if v := os.Getenv(outputPathEnv); v != "" {
		c.Output = v
	}

	if v := os.Getenv(formatEnv); v != "" {
		c.Format = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Input != "" {
		base.Input = override.Input
	}

	if override.Output != "" {
		base.Output = override.Output
	}

	if override.Format != "" {
		base.Format = override.Format
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Input:   "Zotero Report.html",
		Output:  "zotero_literature.json",
		Format:  "zotero",
		Logging: LoggingConfig{Level: "info"},
	}
}
