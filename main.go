package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kariqs/amexan-store/controllers"
	"github.com/Kariqs/amexan-store/initializers"
	"github.com/Kariqs/amexan-store/routes"
	"github.com/Kariqs/amexan-store/services"
	"github.com/Kariqs/amexan-store/stores"
	"github.com/Kariqs/amexan-store/utils"
	"github.com/gin-gonic/gin"
)

func init() {
	utils.InitLogger()
	initializers.LoadEnv()
}

func openStore(cfg initializers.Config) (stores.Store, error) {
	if cfg.StoreDriver == initializers.DriverMemory {
		utils.Warn("using in-memory store, data is lost on restart", nil)
		return stores.NewMemoryStore(), nil
	}

	db, err := initializers.ConnectToDB(cfg)
	if err != nil {
		return nil, err
	}
	if err := initializers.SyncDatabase(db); err != nil {
		return nil, err
	}
	return stores.NewGormStore(db), nil
}

func openKeyValueStores(cfg initializers.Config) (stores.ChallengeStore, stores.RevocationStore, error) {
	if cfg.RedisAddr == "" {
		return stores.NewMemoryChallengeStore(), stores.NewMemoryRevocationStore(), nil
	}

	client, err := initializers.ConnectToRedis(cfg)
	if err != nil {
		return nil, nil, err
	}
	utils.Info("connected to redis", map[string]any{"addr": cfg.RedisAddr})
	return stores.NewRedisChallengeStore(client), stores.NewRedisRevocationStore(client), nil
}

func newMailer(cfg initializers.Config) utils.Mailer {
	if cfg.MailTransport == initializers.MailHTTP {
		return utils.NewHTTPMailer(cfg.MailAPIURL, cfg.MailAPIKey, cfg.FromEmail)
	}
	return utils.NewSMTPMailer(utils.SMTPConfig{
		From:     cfg.FromEmail,
		Password: cfg.FromEmailPassword,
		Host:     cfg.FromEmailSMTP,
		Address:  cfg.SMTPAddress,
	})
}

func main() {
	cfg, err := initializers.LoadConfig()
	if err != nil {
		utils.Fatal("invalid configuration", map[string]any{"error": err.Error()})
	}

	store, err := openStore(cfg)
	if err != nil {
		utils.Fatal("failed to open store", map[string]any{"error": err.Error()})
	}
	challenges, revocations, err := openKeyValueStores(cfg)
	if err != nil {
		utils.Fatal("failed to open key value stores", map[string]any{"error": err.Error()})
	}

	hasher := services.NewPasswordHasher(cfg.BcryptCost)
	tokens := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	guard := services.NewGuard(tokens, revocations)
	pricing := services.NewPricing()

	controller := &controllers.Controller{
		Auth:     services.NewAuthService(store.Users(), hasher, tokens, revocations),
		Reset:    services.NewPasswordReset(store.Users(), challenges, newMailer(cfg), hasher, cfg.ResetCodeTTL, cfg.ResetMaxAttempts),
		Catalog:  services.NewCatalog(store, pricing),
		Carts:    services.NewCarts(),
		Checkout: services.NewCheckout(store, guard, pricing),
		Orders:   services.NewOrderService(store.Orders()),
		Wishlist: services.NewWishlistService(store),
		Reviews:  services.NewReviewService(store),
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewServer(controller, guard, cfg.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("http server failed", map[string]any{"error": err.Error()})
		}
	}()
	utils.Info("amexan-store started", map[string]any{"port": cfg.Port, "store": cfg.StoreDriver})

	<-ctx.Done()
	utils.Info("shutdown signal received", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.Fatal("graceful shutdown failed", map[string]any{"error": err.Error()})
	}
	utils.Info("amexan-store stopped cleanly", nil)
}
