package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"kamstim/internal/notifier"
	"kamstim/pkg/cache"
	"kamstim/pkg/config"
	"kamstim/pkg/logger"
	"kamstim/pkg/queue"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}

	n := notifier.New(redisClient, log)

	if err := queueClient.ConsumeActivityTasks(n.HandleActivityTask); err != nil {
		log.Error("Failed to start consumer: %v", err)
		panic(err)
	}

	log.Info("Activity worker started, waiting for tasks")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down worker...")
	if err := queueClient.Close(); err != nil {
		log.Error("Error closing RabbitMQ: %v", err)
	}
	if err := redisClient.Close(); err != nil {
		log.Error("Error closing Redis: %v", err)
	}
}
