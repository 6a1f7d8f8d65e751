package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"service-food-delivery/internal/logx"
	"service-food-delivery/internal/transport/kafka"
)

// WorkerRunner runs the Kafka status worker.
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun consumes status events using the provided DI container until the context is done.
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(
	ctx context.Context,
	pool *pgxpool.Pool,
	rdb *redis.Client,
	logger logx.Logger,
	consumer *kafka.Consumer,
	producer *kafka.Producer,
) error {
	if consumer == nil {
		return fmt.Errorf("kafka consumer is nil: set KAFKA_BROKERS, KAFKA_GROUP_ID and KAFKA_STATUS_TOPIC")
	}
	defer closeWorker(pool, rdb, logger, consumer, producer)

	logger.Info("service-orders-worker started")
	return consumer.Run(ctx)
}

func closeWorker(pool *pgxpool.Pool, rdb *redis.Client, logger logx.Logger, consumer *kafka.Consumer, producer *kafka.Producer) {
	if err := consumer.Close(); err != nil {
		logger.Error("kafka consumer close error", logx.Err(err))
	}
	if err := producer.Close(); err != nil {
		logger.Error("kafka producer close error", logx.Err(err))
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Error("redis close error", logx.Err(err))
		}
	}
	if pool != nil {
		pool.Close()
	}
}
