// Command linkd prepares milestone escrow transactions and anchors expenditure hashes on Stellar.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/Linkd-Fund/linkd-go-sdk/engine/commands"
	"github.com/Linkd-Fund/linkd-go-sdk/pkg/logger"
)

func main() {
	level := zapcore.InfoLevel
	if v, ok := os.LookupEnv("LINKD_LOG_LEVEL"); ok {
		if err := level.Set(v); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LINKD_LOG_LEVEL: %v\n", err)
			os.Exit(1)
		}
	}

	lggr, err := (&logger.Config{Level: level, Development: true}).New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(lggr))
}

func run(lggr logger.Logger) int {
	defer func() { _ = lggr.Sync() }()

	root, err := commands.New(lggr).Root()
	if err != nil {
		lggr.Errorw("Failed to build commands", "error", err)
		return 1
	}

	if err = root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	return 0
}
