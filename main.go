package main

import (
	"os"

	"github.com/abhisek/circuitspace/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
