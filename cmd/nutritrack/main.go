package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"nutritrack/internal/api/client"
	"nutritrack/internal/api/wire"
	"nutritrack/internal/clients/auth"
	"nutritrack/internal/clients/foodlog"
	"nutritrack/internal/clients/health"
	"nutritrack/internal/clients/progress"
	"nutritrack/internal/config"
	"nutritrack/internal/logging"
	"nutritrack/internal/telemetry"
)

func main() {
	// Top-level context with graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1) Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2) Initialize logger
	logger := logging.New(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceEnv,
	)

	// 3) Initialize telemetry (OpenTelemetry)
	otelShutdown, err := telemetry.Setup(ctx, cfg.Observability, logger)
	if err != nil {
		logger.Error("failed to setup telemetry", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown telemetry", "error", err)
		}
	}()

	// 4) Token store, seeded from the previous session if one was saved
	tokens := client.NewTokenStore()
	if tok, err := loadToken(); err == nil && tok != "" {
		tokens.Set(tok)
	}

	// 5) API client
	api := client.New(cfg, tokens, logger)

	logger.Info("nutritrack client ready",
		"env", string(cfg.Environment),
		"base_url", api.BaseURL(),
	)

	if err := run(ctx, api, tokens, logger); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, api *client.Client, tokens *client.TokenStore, logger logging.Logger) error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: nutritrack <ping|login|logout|log-food|diary|weights>")
	}

	switch os.Args[1] {
	case "ping":
		status, err := health.New(api).Ping(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("api %s (version %s)\n", status.Status, status.Version)
		return nil

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "account password")
		_ = fs.Parse(os.Args[2:])

		session, err := auth.New(api, tokens, logger).Login(ctx, auth.Credentials{
			Email:    *email,
			Password: *password,
		})
		if err != nil {
			return err
		}
		if err := saveToken(session.AccessToken); err != nil {
			logger.Warn("could not persist session token", "error", err)
		}
		fmt.Printf("logged in as %s (session expires %s)\n",
			*email, session.ExpiresAt.Format(time.RFC1123))
		return nil

	case "logout":
		if err := auth.New(api, tokens, logger).Logout(ctx); err != nil {
			return err
		}
		_ = os.Remove(tokenPath())
		fmt.Println("logged out")
		return nil

	case "log-food":
		fs := flag.NewFlagSet("log-food", flag.ExitOnError)
		foodID := fs.String("food-id", "", "food id to log")
		meal := fs.String("meal", "snack", "breakfast, lunch, dinner or snack")
		servings := fs.Float64("servings", 1, "number of servings")
		_ = fs.Parse(os.Args[2:])

		entry, err := foodlog.New(api, logger).Create(ctx, foodlog.NewEntry{
			FoodID:   *foodID,
			MealType: *meal,
			Servings: *servings,
			LoggedAt: wire.NewTimestamp(time.Now()),
		})
		if err != nil {
			return err
		}
		fmt.Printf("logged %s: %.0f kcal (%s)\n", entry.FoodName, entry.Calories, entry.ID)
		return nil

	case "diary":
		fs := flag.NewFlagSet("diary", flag.ExitOnError)
		from := fs.String("from", "", "start date (YYYY-MM-DD)")
		to := fs.String("to", "", "end date (YYYY-MM-DD)")
		_ = fs.Parse(os.Args[2:])

		entries, err := foodlog.New(api, logger).List(ctx, foodlog.Filter{From: *from, To: *to})
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s  %-9s %-24s %.0f kcal\n",
				e.LoggedAt.Format("2006-01-02"), e.MealType, e.FoodName, e.Calories)
		}
		return nil

	case "weights":
		fs := flag.NewFlagSet("weights", flag.ExitOnError)
		from := fs.String("from", "", "start date (YYYY-MM-DD)")
		to := fs.String("to", "", "end date (YYYY-MM-DD)")
		_ = fs.Parse(os.Args[2:])

		entries, err := progress.New(api, logger).Weights(ctx, progress.Range{From: *from, To: *to})
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s  %.1f kg\n", e.RecordedAt.Format("2006-01-02"), e.WeightKG)
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q", os.Args[1])
	}
}

func tokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".nutritrack-token"
	}
	return filepath.Join(home, ".nutritrack", "token")
}

func loadToken() (string, error) {
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func saveToken(token string) error {
	path := tokenPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token+"\n"), 0o600)
}
