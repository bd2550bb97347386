package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vippsas/scanbuf/scanscript"
)

var (
	mode string

	runCmd = &cobra.Command{
		Use:   "run <input-file> <script-name|script-file>",
		Short: "Run a scan script against an input file and print one line per step",
		Long:  "Runs a scan script against the contents of an input file. The script is looked up by name in scanbuf.yaml first, and otherwise read as a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logrus.StandardLogger()

			if len(args) != 2 {
				_ = cmd.Help()
				return errors.New("need to specify <input-file> and <script>")
			}

			config, err := LoadConfig()
			if err != nil {
				return err
			}

			selected := config.Mode
			if mode != "" {
				selected = mode
			}
			m, err := scanscript.ParseMode(selected)
			if err != nil {
				return err
			}

			input, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			steps, err := config.Script(args[1])
			if err != nil {
				return err
			}

			s, err := m.NewScanner(string(input))
			if err != nil {
				return err
			}
			logger.WithFields(logrus.Fields{
				"input": args[0],
				"mode":  m,
				"steps": len(steps),
			}).Debug("running script")

			results, err := scanscript.Run(logger, s, steps)
			for _, r := range results {
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			return err
		},
	}
)

func init() {
	runCmd.Flags().StringVarP(&mode, "mode", "m", "", "scanner to use, char or byte; overrides scanbuf.yaml")
	rootCmd.AddCommand(runCmd)
}
