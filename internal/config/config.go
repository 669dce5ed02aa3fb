// Package config loads the project configuration and the data-driven
// language definitions.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config is the project configuration read from .uft.yaml and UFT_* variables.
type Config struct {
	ConfigDir   string            `mapstructure:"config_dir"`
	Output      string            `mapstructure:"output"`
	Parallel    int               `mapstructure:"parallel"`
	Exclude     []string          `mapstructure:"exclude"`
	Frameworks  map[string]string `mapstructure:"frameworks"`
	Integration OutputConfig      `mapstructure:"integration"`
	Plugins     OutputConfig      `mapstructure:"plugins"`
	Log         LogConfig         `mapstructure:"log"`
}

// OutputConfig names the directory a command writes into.
type OutputConfig struct {
	Output string `mapstructure:"output"`
}

// LogConfig controls the logger.
type LogConfig struct {
	JSON      bool `mapstructure:"json"`
	Verbosity int  `mapstructure:"verbosity"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("config_dir", "./language_configs")
	// Empty output places tests next to their sources.
	v.SetDefault("output", "")
	v.SetDefault("parallel", 1)
	v.SetDefault("exclude", []string{})
	v.SetDefault("frameworks", map[string]string{})

	v.SetDefault("integration.output", "integration-tests")
	v.SetDefault("plugins.output", "target/plugins")

	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}

// Load reads configFile, or .uft.yaml from the working directory when
// configFile is empty. A missing default file is not an error.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("UFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".uft")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, errors.WithHint(
				errors.Wrapf(err, "failed to read config %s", configFile),
				"check the YAML syntax or pass --config with a valid file",
			)
		}
	}

	return LoadWithViper(v)
}

// LoadWithViper unmarshals the configuration held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.Frameworks == nil {
		cfg.Frameworks = map[string]string{}
	}

	return &cfg, nil
}

// ParseFrameworks turns repeated lang=framework pairs into a map.
func ParseFrameworks(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		lang, fw, ok := strings.Cut(pair, "=")
		lang = strings.TrimSpace(lang)
		fw = strings.TrimSpace(fw)

		if !ok || lang == "" || fw == "" {
			return nil, errors.WithHint(
				errors.Newf("invalid framework override %q", pair),
				"use the form language=framework, e.g. python=unittest",
			)
		}

		out[strings.ToLower(lang)] = fw
	}

	return out, nil
}

// MergeFrameworks overlays overrides on base without modifying either.
func MergeFrameworks(base, overrides map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}

	for k, v := range overrides {
		out[k] = v
	}

	return out
}
