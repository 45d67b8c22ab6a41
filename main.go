package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"housing-agent/cli"
)

func main() {
	// Optional .env for local development; environment wins when both set.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
