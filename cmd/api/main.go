package main

import (
	"handoff-address/pkg/logger"
)

func main() {
	cfg := LoadConfiguration()

	app, err := NewApp(cfg)
	if err != nil {
		logger.GlobalLogger.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	app.InitializeServer()
	app.StartServer()
}
