package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/restaurant-erp/internal/billing/api"
	mongorepo "github.com/samandr77/restaurant-erp/internal/billing/repository/mongo"
	pgrepo "github.com/samandr77/restaurant-erp/internal/billing/repository/postgres"
	"github.com/samandr77/restaurant-erp/internal/billing/service"
	"github.com/samandr77/restaurant-erp/pkg/broker"
	"github.com/samandr77/restaurant-erp/pkg/config"
	"github.com/samandr77/restaurant-erp/pkg/httpapi"
	"github.com/samandr77/restaurant-erp/pkg/logger"
	"github.com/samandr77/restaurant-erp/pkg/mongo"
	"github.com/samandr77/restaurant-erp/pkg/postgres"
)

const (
	ReadTimeout  = 3 * time.Second
	WriteTimeout = 5 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New[config.Billing](".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	repo, closeStore, err := newRepository(ctx, cfg.Store)
	panicOnErr("open bill store", err)
	defer closeStore()

	var producer service.Producer

	if len(cfg.Kafka.Brokers) > 0 {
		p := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.BillEventsTopic)
		defer p.Close()

		producer = p
	}

	s := service.New(repo, producer)

	handler := api.NewHandler(s)
	mw := httpapi.NewMiddleware()

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "billing service started", "port", cfg.HTTP.Port, "store", cfg.Store.Driver)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err := server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

// newRepository connects the configured bill store. The returned func releases the connection.
func newRepository(ctx context.Context, cfg config.Store) (service.Repository, func(), error) {
	switch cfg.Driver {
	case config.StoreDriverMongo:
		db, err := mongo.Connect(ctx, cfg.MongoURL, cfg.Name)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to mongo: %w", err)
		}

		closeFn := func() {
			err := mongo.Disconnect(context.Background(), db)
			if err != nil {
				slog.Error("disconnect from mongo", "error", err)
			}
		}

		return mongorepo.New(db), closeFn, nil
	case config.StoreDriverPostgres:
		pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresDBName, cfg.PostgresMaxConns)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}

		err = postgres.UpMigrations(pool)
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("up migrations: %w", err)
		}

		return pgrepo.New(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
