package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	config "postdeck/configs"
	"postdeck/internal/cli"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()
	os.Exit(cli.Run(cfg, os.Args[1:], os.Stdout, os.Stderr))
}
