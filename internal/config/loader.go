package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering, lowest precedence first:
//  1. built-in defaults
//  2. YAML file named by SLEEPERDB_CONFIG, when set
//  3. environment variables (prefix SLEEPERDB_, "__" separating nesting,
//     e.g. SLEEPERDB_SLEEPER__BASE_URL -> sleeper.base_url)
func Load() (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("env config: %w", err)
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	if cfg.RefreshInterval <= 0 {
		return fmt.Errorf("refresh_interval must be positive")
	}
	switch cfg.Provider {
	case "sleeper", "fixture":
	default:
		return fmt.Errorf("unknown provider %q", cfg.Provider)
	}
	if cfg.Exports.Dir == "" {
		return fmt.Errorf("exports.dir must not be empty")
	}
	return nil
}
