package configs

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "MLPROJECT"

//go:embed config.example.yaml
var defaultConfigYAML string

// NewViper returns a viper instance seeded with the embedded defaults and
// bound to MLPROJECT_* environment variables. Config files merged on top
// only need to name the keys they change.
func NewViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(defaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("failed to read embedded config.example.yaml: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v, nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode application config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
