package main

import (
	"os"

	"github.com/ChristopherRabotin/kspdv"
)

func main() {
	logger := kspdv.NewLogger(os.Stderr, "cli")
	if err := newRootCmd().Execute(); err != nil {
		logger.Log("level", "error", "message", err)
		os.Exit(1)
	}
}
