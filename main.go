package main

import (
	"os"

	"github.com/gbianchi/impara/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
