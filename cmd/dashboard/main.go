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

	"github.com/samandr77/restaurant-erp/internal/dashboard/api"
	"github.com/samandr77/restaurant-erp/internal/dashboard/clients/billing"
	"github.com/samandr77/restaurant-erp/internal/dashboard/clients/customer"
	"github.com/samandr77/restaurant-erp/internal/dashboard/clients/menu"
	"github.com/samandr77/restaurant-erp/internal/dashboard/clients/staff"
	"github.com/samandr77/restaurant-erp/internal/dashboard/service"
	"github.com/samandr77/restaurant-erp/pkg/config"
	"github.com/samandr77/restaurant-erp/pkg/httpapi"
	"github.com/samandr77/restaurant-erp/pkg/logger"
)

const ReadTimeout = 3 * time.Second

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New[config.Dashboard](".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	s := service.New(
		billing.NewClient(cfg.BillingURL, cfg.DownstreamTimeout),
		customer.NewClient(cfg.CustomerURL, cfg.DownstreamTimeout),
		menu.NewClient(cfg.MenuURL, cfg.DownstreamTimeout),
		staff.NewClient(cfg.StaffURL, cfg.DownstreamTimeout),
	)

	handler := api.NewHandler(s)
	mw := httpapi.NewMiddleware()

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:     router,
		ReadTimeout: ReadTimeout,
		// Leaves room for the slowest dependency call.
		WriteTimeout: cfg.DownstreamTimeout + time.Second,
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

	slog.InfoContext(ctx, "dashboard service started", "port", cfg.HTTP.Port)

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

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
