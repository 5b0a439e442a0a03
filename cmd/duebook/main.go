package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/duebook-dev/duebook/internal/commands"
)

func main() {
	// Optional .env in the working directory; absence is fine.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
