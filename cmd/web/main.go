package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/config"
	apphttp "github.com/cancoskuner690-cmd/gulum-mobilya/internal/http"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/mailer"
	cartmod "github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/cart"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/catalog"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/contact"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/orders"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/payments"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/users"
	stripeprov "github.com/cancoskuner690-cmd/gulum-mobilya/internal/providers/stripe"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/storage"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/store"
)

func main() {
	// .env is optional; prod uses real env vars
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	st, err := store.Connect(ctx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = st.Close(shutdownCtx)
	}()

	images, err := storage.FromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to configure storage: %v", err)
	}

	catalogRepo := catalog.NewRepo(st.DB)
	catalogSvc := catalog.NewService(catalogRepo)

	cartRepo := cartmod.NewRepo(st.DB)
	cartSvc := cartmod.NewService(cartRepo, catalogSvc)

	tokens := users.NewTokens(cfg.JWTSecret)
	userRepo := users.NewRepo(st.DB)
	userSvc := users.NewService(userRepo, tokens)

	orderRepo := orders.NewRepo(st.DB)
	orderSvc := orders.NewService(orderRepo, cartRepo, catalogSvc)

	var provider payments.Provider
	if cfg.StripeConfigured() {
		provider = stripeprov.New(cfg.StripeAPIKey, cfg.StripeWebhookSecret)
	} else {
		logger.Warn("STRIPE_API_KEY not set, checkout endpoints disabled")
	}
	paymentSvc := payments.NewService(
		provider,
		payments.NewRepo(st.DB),
		orderRepo,
		payments.NewEventRepo(st.DB),
		cfg.Currency,
		logger,
	)

	var mail mailer.Service
	if cfg.SMTPAddr != "" {
		mail = mailer.NewSMTPMailer(cfg.SMTPAddr)
	}
	contactSvc := contact.NewService(contact.NewRepo(st.DB), mail, cfg.ContactNotifyTo, cfg.SMTPFrom, logger)

	r := apphttp.NewRouter(apphttp.Deps{
		Logger:      logger,
		Users:       userSvc,
		Tokens:      tokens,
		Catalog:     catalogSvc,
		Cart:        cartSvc,
		Orders:      orderSvc,
		Payments:    paymentSvc,
		Contact:     contactSvc,
		Images:      images,
		CORSOrigins: cfg.CORSOrigins,
	})

	go func() {
		logger.Info("listening", "addr", cfg.Addr)
		if err := r.Run(cfg.Addr); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")
}
