package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"go.klb.dev/cpy/internal/clip"
)

const envPrefix = "CPY"

// setting is one configurable key. The same key is used in cpy.toml and,
// upper-cased with '-' as '_', after the CPY_ prefix in the environment.
type setting struct {
	key  string
	def  string
	help string
}

var settings = []setting{
	{"config", "", "config file (default: /etc/cpy/cpy.toml, then ~/.config/cpy/cpy.toml)"},
	{"xclip", clip.DefaultProgram, "clipboard utility to run"},
	{"selection", clip.DefaultSelection, "X selection: clipboard|primary|secondary"},
	{"log-format", "auto", "log format: auto|text|json"},
	{"log-level", "warn", "log level: debug|info|warn|error"},
}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// loadConfig fills v from defaults, then the first cpy.toml found, then
// CPY_* environment variables. CPY_CONFIG names the file explicitly, and in
// that case the file must exist.
func loadConfig(v *viper.Viper) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, s := range settings {
		if s.def != "" {
			v.SetDefault(s.key, s.def)
		}
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("cpy")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/cpy/")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "cpy"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// setupLogging reads the logging settings from viper and configures slog.
func setupLogging(v *viper.Viper, w io.Writer) {
	resolveLogging(w, v.GetString("log-format"), v.GetString("log-level"))
}
