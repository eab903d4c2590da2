package cmd

import (
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ouankou/roup/pragma"
)

var (
	rootCmd = &cobra.Command{
		Use:          "roup",
		Short:        "roup",
		SilenceUsage: true,
		Long:         `CLI for the ROUP directive parser: parse, convert and scan OpenMP/OpenACC pragmas in C, C++ and Fortran sources.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			config, err = LoadConfig(configPath)
			if err != nil {
				return err
			}
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			if !config.Display.ColorOutput {
				color.NoColor = true
			}
			return nil
		},
	}

	config     *Config
	configPath string
	dialectArg string
	langArg    string
	verbose    bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a roup.toml config file (default: ~/.roup.toml if present)")
	rootCmd.PersistentFlags().StringVarP(&dialectArg, "dialect", "d", "", "dialect: omp or acc (default: detect from the sentinel)")
	rootCmd.PersistentFlags().StringVarP(&langArg, "lang", "l", "", "base language: c, fortran-free or fortran-fixed (default: detect)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return rootCmd.Execute()
}

func baseLang() (pragma.BaseLang, error) {
	switch langArg {
	case "", "auto":
		return pragma.LangDetect, nil
	case "c", "cpp", "c++":
		return pragma.LangC, nil
	case "fortran", "fortran-free":
		return pragma.LangFortranFree, nil
	case "fortran-fixed":
		return pragma.LangFortranFixed, nil
	}
	return 0, errBadFlag("lang", langArg)
}

func dialect() (pragma.Dialect, bool, error) {
	switch dialectArg {
	case "":
		return 0, false, nil
	case "omp", "openmp":
		return pragma.OpenMP, true, nil
	case "acc", "openacc":
		return pragma.OpenACC, true, nil
	}
	return 0, false, errBadFlag("dialect", dialectArg)
}
