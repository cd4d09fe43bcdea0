package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/keymapd/internal/config"
)

var compileFormat string

var compileCmd = &cobra.Command{
	Use:   "compile <config>",
	Short: "Compile a configuration and dump the resulting snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Parse(args[0])
		if err != nil {
			return err
		}

		for _, w := range cfg.Warnings {
			log.Warnf("%s", w)
		}

		switch compileFormat {
		case "json":
			return cfg.EncodeJSON(os.Stdout)
		case "yaml":
			return cfg.EncodeYAML(os.Stdout)
		default:
			return fmt.Errorf("unknown format %q (want json or yaml)", compileFormat)
		}
	},
}

func init() {
	compileCmd.Flags().StringVarP(&compileFormat, "format", "f", "json", "output format (json, yaml)")
	rootCmd.AddCommand(compileCmd)
}
