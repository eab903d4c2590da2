package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ouankou/roup"
	"github.com/ouankou/roup/pragma"
)

var scanCmd = &cobra.Command{
	Use:   "scan <file>...",
	Short: "Extract and parse every directive in source files",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			_ = cmd.Help()
			return errors.New("need at least one source file")
		}
		lang, err := baseLang()
		if err != nil {
			return err
		}

		failed := false
		for _, path := range args {
			src, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "cannot read %s", path)
			}
			directives, err := roup.ScanSource(string(src), lang, pragma.FileRef(path))
			for _, d := range directives {
				pos := d.HeadPos()
				fmt.Printf("%s:%d:%d: %s\n", path, pos.Line, pos.Col, roup.Unparse(d, pragma.Canonical))
			}
			if err != nil {
				failed = true
				var scanErrs roup.ScanErrors
				if errors.As(err, &scanErrs) {
					for _, pe := range scanErrs.Errors {
						color.Red("%s", pe)
					}
				} else {
					logrus.Errorf("%s: %s", path, err)
				}
			}
			logrus.Debugf("%s: %d directives", path, len(directives))
		}
		if failed {
			return errors.New("some directives failed to parse")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
