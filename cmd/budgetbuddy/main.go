package main

import (
	"os"

	"github.com/budgetbuddy-dev/budgetbuddy/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
