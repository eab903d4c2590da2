package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ouankou/roup"
	"github.com/ouankou/roup/pragma"
)

var (
	formatArg       string
	preserveAliases bool

	parseCmd = &cobra.Command{
		Use:   "parse <pragma text>",
		Short: "Parse one directive and dump the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return errors.New("need the pragma text to parse")
			}
			input := strings.Join(args, " ")

			lang, err := baseLang()
			if err != nil {
				return err
			}

			var d *pragma.Directive
			if dia, forced, err := dialect(); err != nil {
				return err
			} else if forced {
				d, err = roup.Parse(input, dia, lang)
				if err != nil {
					return printParseError(err)
				}
			} else {
				// detect the dialect from the sentinel, honoring --lang
				line, perr := pragma.Normalize(input, lang, "")
				if perr != nil {
					return printParseError(perr)
				}
				dirs, clauses := roup.Registries(line.Dialect)
				d, perr = pragma.Parse(line, line.Dialect, dirs, clauses)
				if perr != nil {
					return printParseError(perr)
				}
			}

			format := formatArg
			if format == "" {
				format = config.Output.Format
			}
			switch format {
			case "yaml":
				out, err := yaml.Marshal(d)
				if err != nil {
					return err
				}
				fmt.Print(string(out))
			case "repr":
				repr.Println(d)
			case "pragma":
				mode := pragma.Canonical
				if preserveAliases {
					mode = pragma.PreserveAliases
				}
				fmt.Println(roup.Unparse(d, mode))
			default:
				return errBadFlag("format", format)
			}
			return nil
		},
	}
)

func printParseError(err error) error {
	color.Red("%s", err)
	return errors.New("parse failed")
}

func init() {
	parseCmd.Flags().StringVarP(&formatArg, "format", "f", "", "output format: pragma, yaml or repr")
	parseCmd.Flags().BoolVarP(&preserveAliases, "preserve-aliases", "p", false, "re-emit alias spellings as written instead of canonical names")
	rootCmd.AddCommand(parseCmd)
}
