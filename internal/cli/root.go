// Package cli implements the keymapd command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/dshills/keymapd/internal/logging"
)

var (
	verbose      bool
	debug        bool
	settingsPath string

	log      logging.Logger
	settings Settings
)

var rootCmd = &cobra.Command{
	Use:   "keymapd",
	Short: "Compile and inspect keyboard remapping configurations",
	Long: `keymapd compiles keyboard remapping configuration files into the
pre-resolved form executed by the remapping engine, and provides tooling
to validate, inspect and watch them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logging.Logger{Verbose: verbose, Debug: debug}

		var err error
		settings, err = LoadSettings(settingsPath)
		if err != nil {
			log.Warnf("settings: %v", err)
		}
		if settings.Verbose {
			log.Verbose = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show informational output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "show debugging output")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "path to the keymapd.toml settings file")
}

// Execute runs the command tree.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		log.Errorf("%v", err)
	}
	return err
}
