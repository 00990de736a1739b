package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g.
// TEMPCLEANER_COMMAND_TIMEOUT=30s.
const EnvPrefix = "TEMPCLEANER"

// Settings holds the runtime options. None of them are persisted.
type Settings struct {
	// CommandTimeout bounds every task run.
	CommandTimeout time.Duration `mapstructure:"command_timeout"`

	// Confirm asks before destructive actions.
	Confirm bool `mapstructure:"confirm"`

	Log LogSettings `mapstructure:"log"`
}

// LogSettings configures the diagnostic log.
type LogSettings struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`

	// File receives the log. Empty means stderr.
	File string `mapstructure:"file"`
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("command_timeout", 300*time.Second)
	v.SetDefault("confirm", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Load reads settings from v. Environment variables with EnvPrefix override
// defaults; if configFile is non-empty that YAML file is read too. Flags
// bound to v beforehand take precedence over both.
func Load(v *viper.Viper, configFile string) (*Settings, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	s := new(Settings)
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	if s.CommandTimeout <= 0 {
		return nil, fmt.Errorf("command_timeout must be positive, got %s", s.CommandTimeout)
	}
	return s, nil
}

// DefaultLogFile is where the interactive UI writes its diagnostic log, so
// that log lines never draw over the screen. The temp directories are
// cleaning targets and are never used; without a cache directory the log
// sits next to the executable, and failing that it is empty (stderr).
func DefaultLogFile() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "TempCleaner", "tempcleaner.log")
	}
	if exe, err := os.Executable(); err == nil {
		return filepath.Join(filepath.Dir(exe), "tempcleaner.log")
	}
	return ""
}
