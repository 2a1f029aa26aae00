package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"duediligence_backend/internal/app/config"
	"duediligence_backend/internal/app/di"
	"duediligence_backend/internal/app/router"
	"duediligence_backend/internal/feature/duediligence/transport/handler"
	"duediligence_backend/internal/feature/duediligence/usecase"
	"duediligence_backend/internal/platform/logger"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	logger.Init(logger.LoadConfig(), os.Stdout)
	cfg := config.LoadConfig()

	// APIキーは検証しない（未設定の場合は呼び出し時に認証エラーになる）
	if cfg.Provider == config.ProviderOpenAI && os.Getenv("OPENAI_API_KEY") == "" {
		slog.Warn("OPENAI_API_KEY is not set; requests to the search API will fail")
	}
	if cfg.Provider == config.ProviderGemini && os.Getenv("GEMINI_API_KEY") == "" {
		slog.Warn("GEMINI_API_KEY is not set; requests to the search API will fail")
	}

	// WebSearcher
	searcher, err := di.NewWebSearcher(cfg)
	if err != nil {
		slog.Error("failed to create web searcher", "provider", cfg.Provider, "error", err)
		os.Exit(1)
	}

	// Usecase
	ddUC := usecase.NewDueDiligenceUsecase(searcher)

	// Handler
	ddH := handler.NewDueDiligenceHandler(ddUC)

	// ルータ生成
	r := router.NewRouter(router.Options{
		PublicDir:   cfg.PublicDir,
		CORSOrigins: cfg.CORSOrigins,
		Provider:    cfg.Provider,
	}, ddH)

	slog.Info("Servidor corriendo en http://localhost"+cfg.Addr(), "provider", cfg.Provider, "public_dir", cfg.PublicDir)
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
