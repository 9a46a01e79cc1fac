package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/GustavoWillian7/ecommerce-engine/cmd/config"
	"github.com/GustavoWillian7/ecommerce-engine/thirdparty/rabbitmq"
	"github.com/GustavoWillian7/ecommerce-engine/utils/logger"
)

// The consumer runs as its own process so a slow fulfillment webhook never
// backs up the API server.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		cfg.Fulfillment.WebhookURL, cfg.Fulfillment.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("order events consumer running", zap.String("webhook", cfg.Fulfillment.WebhookURL))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down consumer")
}
