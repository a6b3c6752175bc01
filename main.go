package main

import (
	"github.com/joho/godotenv"

	"grana/cmd"
)

func main() {
	// Optional .env for GRANA_API_URL during local development.
	_ = godotenv.Load()

	cmd.Execute()
}
