package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/degenscope/scanner-backend/internal/app"
)

func main() {
	// Env overrides .env; a missing .env file is fine.
	_ = godotenv.Load()

	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	a.Log.Info("Server listening", "port", a.Cfg.Port)
	if err := a.Run(); err != nil {
		a.Log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
