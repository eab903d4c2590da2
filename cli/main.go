package main

import (
	"os"

	"github.com/ouankou/roup/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
