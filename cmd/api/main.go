package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Software78/payment-instruction-parser/catalog"
	"github.com/Software78/payment-instruction-parser/log"
	"github.com/Software78/payment-instruction-parser/server"
	"github.com/Software78/payment-instruction-parser/transaction"
	"github.com/Software78/payment-instruction-parser/zap"
)

func main() {
	cfg := server.ConfigFromEnv()

	logger, err := zap.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	defer func() { _ = logger.Sync(ctx) }()

	processor := transaction.NewProcessor(transaction.WithReasonFunc(catalog.Reason))

	srv := server.New(cfg, server.NewHandler(processor, logger), logger)

	logger.Log(ctx, log.LevelInfo, "starting server", log.String("address", cfg.Address))

	if err := srv.Run(); err != nil {
		logger.Log(ctx, log.LevelError, "server exited", log.Err(err))
		os.Exit(1)
	}
}
