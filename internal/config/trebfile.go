package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/treb-tracker/internal/domain/config"
)

// LoadProjectConfig loads and parses treb.toml. A missing file yields the
// default configuration.
func LoadProjectConfig(path string) (*config.ProjectConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.DefaultProjectConfig(), nil
	}

	var cfg config.ProjectConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse treb.toml: %w", err)
	}

	cfg.Compiler.Cmd = os.ExpandEnv(cfg.Compiler.Cmd)
	for i, opt := range cfg.Compiler.Options {
		cfg.Compiler.Options[i] = os.ExpandEnv(opt)
	}
	for name, args := range cfg.Deployment.Args {
		for i, arg := range args {
			args[i] = os.ExpandEnv(arg)
		}
		cfg.Deployment.Args[name] = args
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}
