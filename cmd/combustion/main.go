package main

import (
	"os"

	"combustion/cmd/combustion/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
