package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/sessions"
	"github.com/madelynseal/spord-tracker/internal/config"
	"github.com/madelynseal/spord-tracker/internal/handlers"
	"github.com/madelynseal/spord-tracker/internal/store"
	"github.com/madelynseal/spord-tracker/web"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "Path to the config file")
	flag.Parse()

	// 1. Load Configuration (written with defaults on first run)
	cfg, err := config.LoadOrCreate(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// The secured listener has never been implemented; refuse to pretend.
	if cfg.Web.HTTPS {
		slog.Error("TLS listener not implemented, set web.https to false")
		os.Exit(1)
	}

	// 2. Init DB: create the schema on first run, then open the pooled
	// connection the handlers share.
	if err := store.EnsureInitialized(nil, cfg.Store.Location); err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}
	db, err := store.Open(cfg.Store.Location)
	if err != nil {
		slog.Error("Failed to open store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3. Session Setup
	sessionStore := sessions.NewCookieStore(cfg.Web.SessionKeyBytes())
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Secure = cfg.Web.CookieSecure
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Path = "/"

	// 4. Init Templates
	templates := handlers.NewTemplateCache()
	if err := templates.Load(web.Assets); err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	// 5. Setup Handlers
	auth := &handlers.SessionAuth{Sessions: sessionStore}
	app := &handlers.App{
		Auth:   auth,
		Pages:  &handlers.PageHandler{Auth: auth, Templates: templates, Assets: web.Assets},
		Users:  &handlers.UserHandler{Store: db, Auth: auth},
		Spords: &handlers.SpordHandler{Store: db},
	}

	// 6. Middleware chain, shared with the handler tests.
	handler := app.Handler(
		cfg.Web.CSRFKeyBytes(),
		cfg.Web.CookieSecure,
		[]string{cfg.Web.Listen, "localhost", "127.0.0.1"},
	)

	// 7. Start Server with Graceful Shutdown
	server := &http.Server{
		Addr:    cfg.Web.Listen,
		Handler: handler,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Server starting", "listen", cfg.Web.Listen)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	<-stop

	slog.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited gracefully.")
}
