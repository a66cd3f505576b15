package main

import (
	"context"
	"os"

	"github.com/Pavel0606/mitso-core-js/pkg/logger"
)

func main() {
	if err := Execute(context.Background()); err != nil {
		log.Error("command failed", logger.Error(err))
		os.Exit(1)
	}
}
