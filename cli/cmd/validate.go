package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vippsas/scanbuf"
)

var (
	validateCmd = &cobra.Command{
		Use:   "validate <input-file>",
		Short: "Check that an input file can be loaded by the character scanner",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_ = cmd.Help()
				return errors.New("need to specify <input-file>")
			}
			input, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			s, err := scanbuf.NewCharScanner(string(input))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d characters, %d bytes\n", args[0], s.Len(), len(input))
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(validateCmd)
}
