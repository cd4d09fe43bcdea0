package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/keymapd/internal/config"
)

var checkCmd = &cobra.Command{
	Use:   "check <config>...",
	Short: "Validate configuration files",
	Long: `Compile each configuration file and report diagnostics. Warnings
identify skipped entries; a fatal error aborts that file's load. The
command exits non-zero if any file fails to compile.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0

		for _, path := range args {
			cfg, err := config.Parse(path)
			if err != nil {
				log.Errorf("%s: %v", path, err)
				failed++
				continue
			}

			for _, w := range cfg.Warnings {
				log.Warnf("%s", w)
			}
			log.Infof("%s: %d layers, %d macros, %d commands, %d warnings",
				path, len(cfg.Layers), len(cfg.Macros), len(cfg.Commands), len(cfg.Warnings))
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d configs failed to compile", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
