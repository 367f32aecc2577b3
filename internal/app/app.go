package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	apigrpc "github.com/klagrida/fitnesse-calculator-demo/internal/api/grpc"
	apihttp "github.com/klagrida/fitnesse-calculator-demo/internal/api/http"
	"github.com/klagrida/fitnesse-calculator-demo/internal/api/http/controllers/calculator"
	"github.com/klagrida/fitnesse-calculator-demo/internal/api/http/controllers/system"
	"github.com/klagrida/fitnesse-calculator-demo/internal/fixture"
	"github.com/klagrida/fitnesse-calculator-demo/internal/infrastructure/click"
	"github.com/klagrida/fitnesse-calculator-demo/internal/infrastructure/kafka"
	"github.com/klagrida/fitnesse-calculator-demo/internal/infrastructure/memory"
	"github.com/klagrida/fitnesse-calculator-demo/internal/infrastructure/mongo"
	"github.com/klagrida/fitnesse-calculator-demo/internal/infrastructure/pg"
	"github.com/klagrida/fitnesse-calculator-demo/internal/infrastructure/redis"
	"github.com/klagrida/fitnesse-calculator-demo/internal/pkg/logger"
	"github.com/klagrida/fitnesse-calculator-demo/internal/ports"
	"github.com/klagrida/fitnesse-calculator-demo/internal/table"
	calcUsecase "github.com/klagrida/fitnesse-calculator-demo/internal/usecase/calculator"
)

const shutdownTimeout = 10 * time.Second

// App owns the config and, while running, the opened resources.
type App struct {
	cfg     Config
	log     *slog.Logger
	closers []func() error
}

// New creates the application. Connections are opened in Run.
func New(cfg Config) *App {
	return &App{cfg: cfg, log: logger.FromConfig(cfg.Log)}
}

// Run opens storage and optional backends, then serves HTTP, gRPC and the Kafka
// consumer until SIGINT/SIGTERM or the first failure.
func (a *App) Run() error {
	slog.SetDefault(a.log)
	defer a.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := a.openRepository(ctx)
	if err != nil {
		return err
	}
	cache, err := a.openCache()
	if err != nil {
		return err
	}
	analytics, err := a.openAnalytics(ctx)
	if err != nil {
		return err
	}

	var broker ports.IProducer
	if a.cfg.Kafka.Enabled {
		p := kafka.New(&a.cfg.Kafka).Producer()
		a.closers = append(a.closers, p.Close)
		broker = p
	}

	registry := table.NewRegistry()
	fixture.Register(registry)
	uc := calcUsecase.New(repo, cache, broker, analytics, table.NewRunner(registry, a.log), a.log)

	g, gctx := errgroup.WithContext(ctx)

	httpSrv := apihttp.NewServer(a.cfg.Server)
	httpSrv.AddController(
		system.New(repo, a.log),
		calculator.New(uc, a.log))
	g.Go(func() error {
		return httpSrv.Start(gctx)
	})

	if a.cfg.Grpc.Enabled {
		grpcSrv := apigrpc.NewServer(a.cfg.Grpc.Addr(), uc, a.log)
		g.Go(grpcSrv.Start)
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return grpcSrv.Stop(shutdownCtx)
		})
	}

	if a.cfg.Kafka.Enabled {
		consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, a.log)
		a.closers = append(a.closers, consumer.Close)
		g.Go(func() error {
			err := consumer.Run(gctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}

	a.log.Info("application started",
		"http", a.cfg.Server.Addr(),
		"grpc", a.cfg.Grpc.Addr(),
		"storage", a.cfg.Storage,
		"redis", a.cfg.Redis.Enabled,
		"kafka", a.cfg.Kafka.Enabled,
		"clickhouse", a.cfg.ClickHouse.Enabled)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	a.log.Info("application stopped")
	return nil
}

func (a *App) openRepository(ctx context.Context) (ports.IEvaluationRepository, error) {
	switch a.cfg.Storage {
	case StoragePostgres:
		db, err := pg.New(&a.cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("db: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		if err := pg.Migrate(ctx, db); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return pg.NewEvaluationRepo(db, a.log), nil
	case StorageMongo:
		cli, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("mongo: %w", err)
		}
		a.closers = append(a.closers, cli.Close)
		return mongo.NewEvaluationRepo(cli, a.log), nil
	default:
		return memory.NewEvaluationRepo(), nil
	}
}

func (a *App) openCache() (ports.ICache, error) {
	if !a.cfg.Redis.Enabled {
		return memory.NewCache(), nil
	}
	rdb, err := redis.New(&a.cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	a.closers = append(a.closers, rdb.Close)
	return redis.NewCache(rdb, a.cfg.Redis.TTL, a.log), nil
}

func (a *App) openAnalytics(ctx context.Context) (ports.IEvaluationAnalytics, error) {
	if !a.cfg.ClickHouse.Enabled {
		return nil, nil
	}
	ch, err := click.New(&a.cfg.ClickHouse)
	if err != nil {
		return nil, fmt.Errorf("clickhouse: %w", err)
	}
	a.closers = append(a.closers, ch.Close)
	w := click.NewEvaluationWriter(ch)
	if err := w.EnsureTable(ctx); err != nil {
		return nil, fmt.Errorf("clickhouse table: %w", err)
	}
	return w, nil
}

// close releases resources in reverse order of opening.
func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn("close failed", "error", err)
		}
	}
	a.closers = nil
}
