// Command devtoken issues bearer tokens for local development against the API.
package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
