// Package config wires defaults, environment variables, an optional config
// file, and command-line flags into one precedence chain: flags override
// environment, environment overrides the file, the file overrides defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/SaiGuruInukurthi/Pallet-extractor-Gradient-generator/internal/colour"
	"github.com/SaiGuruInukurthi/Pallet-extractor-Gradient-generator/internal/gradient"
)

// AppName is the application name used for config and cache directories.
const AppName = "pallet"

// EnvPrefix prefixes environment variables, e.g. PALLET_MAX_COLOURS=8.
const EnvPrefix = "PALLET"

// Configuration keys shared by flags, environment, and the config file.
const (
	KeyLogLevel     = "log-level"
	KeyNoColor      = "no-color"
	KeyMaxColours   = "max-colours"
	KeyCellSize     = "cell-size"
	KeyMinFrequency = "min-frequency"
	KeyAngle        = "angle"
	KeyStyle        = "style"
	KeySize         = "size"
	KeyFormat       = "format"
)

// Default values for keys whose defaults do not come from the engine.
const (
	DefaultLogLevel = "warn"
	DefaultStyle    = string(gradient.StyleLinear)
	DefaultSize     = "1920x1080"
	DefaultFormat   = "table"
)

// Keys returns every configuration key that flags, environment variables,
// and the config file may set.
func Keys() []string {
	return []string{
		KeyLogLevel,
		KeyNoColor,
		KeyMaxColours,
		KeyCellSize,
		KeyMinFrequency,
		KeyAngle,
		KeyStyle,
		KeySize,
		KeyFormat,
	}
}

// Init loads defaults, environment bindings, and the optional config file
// into the global viper. An explicitly named file that cannot be read is an
// error; a missing default file is not.
func Init(configFile string) error {
	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("unable to read config file: %w", err)
		}
		return nil
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(dir, AppName))
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("unable to read config file: %w", err)
		}
	}

	return nil
}

func setDefaults() {
	viper.SetDefault(KeyLogLevel, DefaultLogLevel)
	viper.SetDefault(KeyNoColor, false)
	viper.SetDefault(KeyMaxColours, colour.DefaultMaxColours)
	viper.SetDefault(KeyCellSize, colour.DefaultCellSize)
	viper.SetDefault(KeyMinFrequency, colour.DefaultMinFrequency)
	viper.SetDefault(KeyAngle, gradient.DefaultAngle)
	viper.SetDefault(KeyStyle, DefaultStyle)
	viper.SetDefault(KeySize, DefaultSize)
	viper.SetDefault(KeyFormat, DefaultFormat)
}

// ExtractorOptions assembles engine options from the resolved configuration.
func ExtractorOptions() colour.Options {
	opts := colour.DefaultOptions()
	opts.MaxColours = viper.GetInt(KeyMaxColours)
	opts.CellSize = viper.GetInt(KeyCellSize)
	opts.MinFrequency = viper.GetFloat64(KeyMinFrequency)
	return opts
}

// ParseSize parses a "WIDTHxHEIGHT" string such as "1920x1080".
func ParseSize(s string) (width, height int, err error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(s)), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q, expected WIDTHxHEIGHT", s)
	}

	width, err = strconv.Atoi(parts[0])
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("invalid width in size %q", s)
	}
	height, err = strconv.Atoi(parts[1])
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("invalid height in size %q", s)
	}

	return width, height, nil
}
