package main

import (
	"os"

	"fluidcontent/cmd/handlers"
	"fluidcontent/internal/logger"
)

func main() {
	logger.Init()
	if err := handlers.Execute(); err != nil {
		os.Exit(1)
	}
}
