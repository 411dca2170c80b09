package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dephea/bitrix-task/internal/adapter/bitrix"
	httpadapter "github.com/dephea/bitrix-task/internal/adapter/http"
	"github.com/dephea/bitrix-task/internal/adapter/http/handlers"
	httpmiddleware "github.com/dephea/bitrix-task/internal/adapter/http/middleware"
	"github.com/dephea/bitrix-task/internal/adapter/http/validation"
	appservice "github.com/dephea/bitrix-task/internal/app/service"
	"github.com/dephea/bitrix-task/internal/config"
	"github.com/dephea/bitrix-task/pkg/translator"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageRu, translator.LanguageEn},
	})
	validation.Register()

	client, err := bitrix.NewClient(bitrix.Config{
		WebhookURL: cfg.BitrixWebhookURL,
		Timeout:    cfg.BitrixTimeout,
	})
	if err != nil {
		logger.Fatal("failed to create bitrix client", zap.Error(err))
	}
	gateway := bitrix.NewTaskGateway(client)
	taskService := appservice.NewTaskService(gateway)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.RequestIDMiddleware(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	httpadapter.RegisterRoutes(
		r,
		handlers.NewHealthHandler(gateway),
		handlers.NewTaskHandler(taskService),
		handlers.NewCommentHandler(taskService),
	)

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr), zap.Duration("bitrix_timeout", cfg.BitrixTimeout))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = atomicLevel
	return zapCfg.Build()
}
