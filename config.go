package identicon

import "github.com/caarlos0/env/v11"

// Config holds the runtime settings which are not passed on the command line.
type Config struct {
	// OutDir is the directory the avatar images are written to when no
	// explicit destination is provided.
	OutDir string `env:"IDENTICON_OUT_DIR" envDefault:"."`
}

// LoadConfigFromEnv loads the CLI configuration from environment variables.
// Parsing failures fall back to the default values.
func LoadConfigFromEnv() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{OutDir: "."}
	}
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}
	return cfg
}
