package main

import (
	"log"

	"github.com/MrSnakeDoc/voyage/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ voyage failed to start: %v", err)
	}
}
