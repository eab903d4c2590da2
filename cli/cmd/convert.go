package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ouankou/roup"
	"github.com/ouankou/roup/pragma"
)

var (
	convertTo string

	convertCmd = &cobra.Command{
		Use:   "convert --to <lang> <pragma text>",
		Short: "Re-express a directive in another base language",
		Long:  `Parses a directive and re-emits it with the target language's sentinel and canonical spellings, flipping language-specific directive names (OpenMP for/do) along the way.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return errors.New("need the pragma text to convert")
			}
			input := strings.Join(args, " ")

			from, err := baseLang()
			if err != nil {
				return err
			}
			var to pragma.BaseLang
			switch convertTo {
			case "c", "cpp", "c++":
				to = pragma.LangC
			case "fortran", "fortran-free":
				to = pragma.LangFortranFree
			case "fortran-fixed":
				to = pragma.LangFortranFixed
			default:
				return errBadFlag("to", convertTo)
			}

			out, err := roup.Convert(input, from, to)
			if err != nil {
				return printParseError(err)
			}
			fmt.Println(out)
			return nil
		},
	}
)

func init() {
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "", "target language: c, fortran-free or fortran-fixed")
	_ = convertCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(convertCmd)
}
