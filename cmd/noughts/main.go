package main

import (
	"os"

	"github.com/jdmorgan/noughts/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
