package main

import (
	"os"

	"github.com/pathlight/pathlight/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
