// Package cli provides the command-line interface for Pallet.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/SaiGuruInukurthi/Pallet-extractor-Gradient-generator/internal/colour"
	"github.com/SaiGuruInukurthi/Pallet-extractor-Gradient-generator/internal/config"
	"github.com/SaiGuruInukurthi/Pallet-extractor-Gradient-generator/internal/image"
	"github.com/SaiGuruInukurthi/Pallet-extractor-Gradient-generator/internal/version"
)

// appState carries the dependencies shared by all subcommands. It is built
// once per command tree so repeated NewRootCmd calls (tests, mostly) do not
// share loggers or caches.
type appState struct {
	logger hclog.Logger
	loader *image.SmartLoader
	quiet  bool
}

// NewRootCmd builds the root command and its subcommand tree.
func NewRootCmd() *cobra.Command {
	app := &appState{
		logger: hclog.NewNullLogger(),
		loader: image.NewSmartLoader(),
	}

	var (
		cfgFile string
		noColor bool
	)

	rootCmd := &cobra.Command{
		Use:   "pallet",
		Short: "Extract dominant colour palettes and gradients from images",
		Long: `Pallet analyses an image with exact per-pixel counting, merges perceptually
close colours in LAB space, and reports the dominant colours with their
share of the image.

The palette can be rendered as a table, hex codes, JSON, or a CSS gradient,
and turned into wallpapers with the gradient command.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Init(cfgFile); err != nil {
				return err
			}

			disableColour := noColor || viper.GetBool(config.KeyNoColor)
			if disableColour {
				colour.DisableColourOutput = true
			}

			levelName := viper.GetString(config.KeyLogLevel)
			level := hclog.LevelFromString(levelName)
			if level == hclog.NoLevel {
				return fmt.Errorf("invalid log level %q (valid: trace, debug, info, warn, error)", levelName)
			}
			if app.quiet {
				level = hclog.Error
			}

			colorMode := hclog.AutoColor
			if disableColour {
				colorMode = hclog.ColorOff
			}

			app.logger = hclog.New(&hclog.LoggerOptions{
				Name:   config.AppName,
				Level:  level,
				Output: cmd.ErrOrStderr(),
				Color:  colorMode,
			})

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/pallet/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&app.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI colour output")

	viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag(config.KeyNoColor, rootCmd.PersistentFlags().Lookup("no-color"))

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newExtractCmd(app))
	rootCmd.AddCommand(newGradientCmd(app))

	return rootCmd
}

// bindFlags binds the command's flags whose names match configuration keys
// to viper. Binding happens per execution so that when several commands
// declare the same key, the executing command's flag wins.
func bindFlags(cmd *cobra.Command) {
	keys := make(map[string]bool)
	for _, k := range config.Keys() {
		keys[k] = true
	}
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if keys[f.Name] {
			viper.BindPFlag(f.Name, f)
		}
	})
}

// newVersionCmd builds the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
