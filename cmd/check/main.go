// Command check runs one due diligence lookup from the command line and prints
// the same JSON body the HTTP endpoint returns.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"duediligence_backend/internal/app/config"
	"duediligence_backend/internal/app/di"
	"duediligence_backend/internal/feature/duediligence/transport/http/dto"
	"duediligence_backend/internal/feature/duediligence/usecase"
	"duediligence_backend/internal/platform/logger"
)

func main() {
	company := flag.String("company", "", "company name to investigate")
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}
	logger.Init(logger.LoadConfig(), os.Stderr)

	if *company == "" {
		fmt.Fprintln(os.Stderr, "usage: check -company <name>")
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg := config.LoadConfig()
	searcher, err := di.NewWebSearcher(cfg)
	if err != nil {
		slog.Error("failed to create web searcher", "provider", cfg.Provider, "error", err)
		os.Exit(1)
	}

	report, err := usecase.NewDueDiligenceUsecase(searcher).Run(ctx, *company)
	if err != nil {
		slog.Error("due diligence failed", "company", *company, "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dto.NewDueDiligenceResponse(report)); err != nil {
		slog.Error("failed to write result", "error", err)
		os.Exit(1)
	}
}
