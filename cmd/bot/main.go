package main

import (
	"context"
	"log"

	"auramind-bot/internal/bot"
	"auramind-bot/internal/clock"
	"auramind-bot/internal/llm"
	"auramind-bot/internal/models/config"
	"auramind-bot/internal/repository/activationkey"
	"auramind-bot/internal/repository/message"
	"auramind-bot/internal/repository/subscription"
	"auramind-bot/internal/repository/user"
	history_service "auramind-bot/internal/service/history"
	"auramind-bot/internal/service/settings"
	subscription_service "auramind-bot/internal/service/subscription"
	user_service "auramind-bot/internal/service/user"
	database "auramind-bot/pkg"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	// Конфигурация нужна до сборки графа зависимостей.
	if err := config.Load(); err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	app := fx.New(
		fx.Provide(
			newLogger,
			clock.New,
			database.NewPostgres,
			// Репозитории
			user.NewUserRepository,
			message.NewMessageRepository,
			subscription.NewSubscriptionRepository,
			activationkey.NewActivationKeyRepository,
			// Сервисы
			user_service.NewUserService,
			subscription_service.NewSubscriptionService,
			history_service.NewHistoryService,
			settings.NewCache,
			llm.NewGatewayFromConfig,
			bot.NewBot,
		),
		fx.Invoke(run),
	)

	app.Run()
}

func newLogger() (*zap.Logger, error) {
	if config.AppConfig.Bot.Debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(lc fx.Lifecycle, b *bot.Bot, db *sqlx.DB, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("🚀 запуск", zap.String("environment", config.AppConfig.Environment))
			go func() {
				if err := b.Start(); err != nil {
					logger.Error("❌ ошибка запуска бота", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("🛑 получен сигнал завершения")
			b.Stop()
			return db.Close()
		},
	})
}
