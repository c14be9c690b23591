package main

import (
	"os"

	"github.com/yakov-partners/know2-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
