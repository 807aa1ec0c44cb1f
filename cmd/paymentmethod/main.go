package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"cardbank/internal/config"
	"cardbank/internal/db"
	"cardbank/internal/handler"
	"cardbank/internal/model"
	"cardbank/internal/registry"
	"cardbank/internal/repository"
	"cardbank/internal/router"
	"cardbank/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using environment variables")
	}

	cfg := config.Load("payment-method", 8001)
	setupLogger(cfg.LogLevel)

	gormDB, err := db.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("database init")
	}
	if err := gormDB.AutoMigrate(&model.PaymentMethod{}); err != nil {
		logrus.WithError(err).Fatal("auto-migrate")
	}

	paymentMethodRepo := repository.NewPaymentMethodRepository(gormDB)
	paymentMethodService := service.NewPaymentMethodService(paymentMethodRepo)
	paymentMethodHandler := handler.NewPaymentMethodHandler(paymentMethodService)

	e := echo.New()
	e.HideBanner = true
	router.RegisterPaymentMethod(e, paymentMethodHandler)

	// CONSUL_TAGS carries the load-balancer routing tags for this
	// instance when the deployment needs them.
	reg, err := registry.New(cfg.ConsulAddr, cfg.ServiceName, cfg.Hostname, cfg.Port, cfg.ConsulTags)
	if err != nil {
		logrus.WithError(err).Fatal("registry init")
	}
	if err := reg.Register(); err != nil {
		logrus.WithError(err).Fatal("registry register")
	}

	go func() {
		addr := ":" + strconv.Itoa(cfg.Port)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	reg.Deregister()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("server shutdown")
	}
}

func setupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}
