package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/keymapd/internal/keycode"
)

var listKeysCmd = &cobra.Command{
	Use:   "list-keys",
	Short: "Print the keycode table",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tNAME\tALT\tSHIFTED")

		for code := 0; code < keycode.NumCodes; code++ {
			ent := keycode.At(keycode.Code(code))
			if ent.Name == "" {
				continue
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", code, ent.Name, ent.Alt, ent.Shifted)
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listKeysCmd)
}
