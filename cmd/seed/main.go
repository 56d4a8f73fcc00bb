package main

import (
	"github.com/SalimDiallo/LouraBackend/internal/app"
	"github.com/SalimDiallo/LouraBackend/internal/config"
	"github.com/SalimDiallo/LouraBackend/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	if err := app.RunSeed(cfg); err != nil {
		logger.Fatal("run seed failed", zap.Error(err))
	}
}
