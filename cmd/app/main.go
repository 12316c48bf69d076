package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bakery/cmd"
	httpin "bakery/internal/adapters/in/http"
	"bakery/internal/adapters/out/productcache"

	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	decimal.MarshalJSONWithoutQuotes = true

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	appLogger := configs.NewLogger()
	slog.SetDefault(appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}

	rdb := connectCache(ctx, configs, appLogger)

	app := cmd.NewCompositionRoot(configs, gormDB, rdb, appLogger)
	if err = startWebServer(ctx, &app, configs.HTTPPort); err != nil {
		log.Fatalf("http server: %v", err)
	}

	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
		_ = sqlDB.Close()
	}
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(configs.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(configs.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(configs.DBConnMaxLifetime)

	return gormDB, nil
}

// connectCache returns nil when no Redis address is configured or Redis is
// unreachable at start-up; products are then read straight from the store.
func connectCache(ctx context.Context, configs cmd.Config, appLogger *slog.Logger) *redis.Client {
	if configs.RedisAddr == "" {
		appLogger.Info("product cache disabled")
		return nil
	}

	rdb, err := productcache.Connect(ctx, productcache.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
		DB:       configs.RedisDB,
	})
	if err != nil {
		appLogger.Warn("product cache unavailable, reading from the store", "error", err)
		return nil
	}
	return rdb
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string) error {
	e, err := httpin.NewEcho(app.CreateServer(), app.Logger())
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
			app.Logger().Error("http shutdown", "error", shutdownErr)
		}
	}()

	app.Logger().Info("http server listening", "port", port)
	if err = e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
