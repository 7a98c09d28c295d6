package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/batyskurylys/catalog-service/config"
	"github.com/batyskurylys/catalog-service/internal/app"
	"github.com/batyskurylys/catalog-service/internal/catalog"
	"github.com/batyskurylys/catalog-service/internal/inquiry"
	"github.com/batyskurylys/catalog-service/internal/webserver"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Local development keeps its settings in .env; absence is fine.
	_ = godotenv.Load()

	initdb := flag.Bool("initdb", false, "drop and recreate database tables, then exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	application := app.NewApplication(cfg)
	if err := application.Init(); err != nil {
		log.Fatalf("startup error: %v", err)
	}

	if *initdb {
		application.InitDb()
		application.Release()
		return
	}

	db := application.DB()
	inquiries := inquiry.NewService(inquiry.NewGormRequestRepository(db), application.Notifier())
	server := webserver.New(application,
		catalog.NewGormCategoryRepository(db),
		catalog.NewGormProductRepository(db),
		inquiries,
	)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Fatalf("web server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zap.L().Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zap.S().Errorf("web server shutdown error: %v", err)
	}
	application.Release()
}
