package main

import (
	"os"

	"rsatoy/cmd/rsatoy/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
