package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"ordersvc/internal/app"
	"ordersvc/internal/config"
	"ordersvc/internal/entities"
	"ordersvc/internal/handler"
	"ordersvc/internal/postgres"
	"ordersvc/internal/repo"
	"ordersvc/internal/service"
	"ordersvc/pkg/cache"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewPostgresRepo(logger, db)
	panicIfErr("failed to ensure schema", orderRepo.EnsureSchema(context.Background()))

	orderCache := cache.NewStore[entities.Order]()
	orderService := service.NewOrderService(logger, orderRepo, orderCache, conf.Store.QueryTimeout)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, orderService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app.Start(ctx)
	<-ctx.Done()
	app.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
