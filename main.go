package main

import (
	"flag"
	"log"

	"orderservice/cmd"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.Parse()

	app, err := cmd.NewApp(configPath)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
