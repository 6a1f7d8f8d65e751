package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"service-food-delivery/internal/logx"
	"service-food-delivery/internal/service/promotion"
	"service-food-delivery/internal/transport/kafka"
)

const shutdownTimeout = 15 * time.Second

type promoSweeper interface {
	SweepExpired(ctx context.Context) (int64, error)
}

// Runner runs the HTTP service.
type Runner struct {
	runFn func(*dig.Container) error
	exit  func(int)
}

// NewRunner returns a new Runner.
func NewRunner() *Runner {
	return &Runner{runFn: run, exit: os.Exit}
}

// MustRun starts the HTTP server using the provided DI container and blocks until shutdown.
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := loggerFrom(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		r.exit(1)
	}
}

func loggerFrom(container *dig.Container) logx.Logger {
	var logger logx.Logger
	if err := container.Invoke(func(l logx.Logger) { logger = l }); err != nil || logger == nil {
		log.Printf("logger unavailable: %v", err)
		return logx.Nop()
	}
	return logger
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

type appIn struct {
	dig.In

	Ctx      context.Context
	Server   *http.Server
	Pool     *pgxpool.Pool
	Redis    *redis.Client
	Producer *kafka.Producer
	Promos   *promotion.Service
	Interval promoSweepInterval
	Logger   logx.Logger
}

func appRun(in appIn) error {
	errCh := startServer(in.Server, in.Logger)
	sweepCtx, stopSweep := context.WithCancel(in.Ctx)
	defer stopSweep()
	sweepDone := startPromoSweepLoop(sweepCtx, in.Logger, in.Promos, time.Duration(in.Interval))

	var serveErr error
	select {
	case <-in.Ctx.Done():
		in.Logger.Info("shutting down service-orders")
	case serveErr = <-errCh:
	}

	stopSweep()
	gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
	<-sweepDone
	closeResources(in.Server, in.Producer, in.Redis, in.Pool, in.Logger)

	if serveErr != nil {
		return serveErr
	}
	return in.Ctx.Err()
}

func startServer(server *http.Server, logger logx.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("service-orders listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen: %w", err)
		}
	}()
	return errCh
}

// startPromoSweepLoop deactivates expired promotions every interval until ctx is done.
// The returned channel is closed when the loop exits.
func startPromoSweepLoop(ctx context.Context, logger logx.Logger, sweeper promoSweeper, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})
	if sweeper == nil || interval <= 0 {
		close(done)
		return done
	}
	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := sweeper.SweepExpired(ctx)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					logger.Warn("promotion sweep failed", logx.Err(err))
					continue
				}
				if n > 0 {
					logger.Info("expired promotions deactivated", logx.Int64("count", n))
				}
			}
		}
	}()
	return done
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Warn("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(server *http.Server, producer *kafka.Producer, rdb *redis.Client, pool *pgxpool.Pool, logger logx.Logger) {
	if server != nil {
		if err := server.Close(); err != nil {
			logger.Warn("server close error", logx.Err(err))
		}
	}
	if err := producer.Close(); err != nil {
		logger.Warn("kafka producer close error", logx.Err(err))
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Warn("redis close error", logx.Err(err))
		}
	}
	if pool != nil {
		pool.Close()
	}
}
