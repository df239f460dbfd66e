package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds the tunable knobs of the build workflows. Key names
// keep the historical Makefile variable spelling so that overrides and
// environment variables stay familiar.
type Settings struct {
	RemoteURL     string `mapstructure:"REMOTE_URL"`
	NoTTY         bool   `mapstructure:"NOTTY"`
	UseVolume     bool   `mapstructure:"USE_VOL"`
	UseUser       bool   `mapstructure:"USE_USR"`
	DockerPull    bool   `mapstructure:"DCKR_PULL"`
	DockerNoCache bool   `mapstructure:"DCKR_NOCACHE"`
	DockerTag     string `mapstructure:"DCKR_TAG"`
	TestCommand   string `mapstructure:"TEST_CMD"`
	DepsCommand   string `mapstructure:"DEPS_CMD"`
}

// Load resolves settings from, in increasing precedence: built-in
// defaults, an optional YAML config file, BUILDWRAP_* environment
// variables, and explicit KEY=VALUE overrides from the command line.
func Load(configPath string, overrides []string) (*Settings, error) {
	v := viper.New()

	v.SetDefault("REMOTE_URL", "")
	v.SetDefault("NOTTY", false)
	v.SetDefault("USE_VOL", true)
	v.SetDefault("USE_USR", true)
	v.SetDefault("DCKR_PULL", true)
	v.SetDefault("DCKR_NOCACHE", false)
	v.SetDefault("DCKR_TAG", "")
	v.SetDefault("TEST_CMD", "pytest")
	v.SetDefault("DEPS_CMD", "pip check")

	v.SetEnvPrefix("BUILDWRAP")
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	for _, override := range overrides {
		key, value, err := splitOverride(override)
		if err != nil {
			return nil, err
		}
		v.Set(key, value)
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// splitOverride parses a single KEY=VALUE command-line override.
func splitOverride(override string) (key, value string, err error) {
	key, value, found := strings.Cut(override, "=")
	if !found || key == "" {
		return "", "", fmt.Errorf("invalid override %q, expected KEY=VALUE", override)
	}
	return key, value, nil
}
