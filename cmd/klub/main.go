package main

import (
	"log"

	"github.com/MrSnakeDoc/klub/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		log.Fatalf("❌ klub failed: %v", err)
	}
}
