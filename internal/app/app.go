package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/xw1nchester/foodkart-vendor/internal/api"
	authhandler "github.com/xw1nchester/foodkart-vendor/internal/auth/handler"
	"github.com/xw1nchester/foodkart-vendor/internal/config"
	dashboardhandler "github.com/xw1nchester/foodkart-vendor/internal/dashboard/handler"
	firmhandler "github.com/xw1nchester/foodkart-vendor/internal/firm/handler"
	"github.com/xw1nchester/foodkart-vendor/internal/handlers"
	"github.com/xw1nchester/foodkart-vendor/internal/inflight"
	"github.com/xw1nchester/foodkart-vendor/internal/notify"
	producthandler "github.com/xw1nchester/foodkart-vendor/internal/product/handler"
	"github.com/xw1nchester/foodkart-vendor/internal/session"
	"github.com/xw1nchester/foodkart-vendor/internal/view"
	"go.uber.org/zap"
)

type App struct {
	HTTPServer *http.Server
}

func NewApp(log *zap.Logger, cfg config.Config) *App {
	router, err := NewRouter(log, cfg)
	if err != nil {
		log.Fatal("failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		HTTPServer: srv,
	}
}

// NewRouter assembles the console: shared middleware, the screens and the static assets.
func NewRouter(log *zap.Logger, cfg config.Config) (http.Handler, error) {
	if cfg.Session.HashKey == "" {
		log.Warn("session hash key is not set, sessions will not survive a restart")
	}

	codec, err := session.NewCodec(cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie codec: %w", err)
	}

	renderer, err := view.New(log)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	store := session.NewCookieStore(codec, cfg.HTTPServer.SecureCookies)

	router := chi.NewRouter()

	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		LoggingMiddleware(log),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.HTTPServer.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost},
			AllowCredentials: true,
		}),
		middleware.Recoverer,
		session.Provider(store, cfg.Session.TTL, log),
		notify.Middleware(codec, cfg.HTTPServer.SecureCookies, log),
	)

	router.NotFound(renderer.NotFound)
	router.MethodNotAllowed(renderer.NotFound)

	router.Get("/ping", PingHandler)
	router.Handle("/static/*", view.Static("/static/"))

	client := api.New(cfg.API, log)
	tracker := inflight.NewTracker()
	authGuard := session.Guard(authhandler.LoginPath)

	screens := []struct {
		name    string
		handler handlers.Handler
	}{
		{"auth", authhandler.New(client, renderer, tracker, log)},
		{"dashboard", dashboardhandler.New(client, renderer, tracker, authGuard, log)},
		{"firm", firmhandler.New(client, renderer, tracker, authGuard, cfg.API.MaxUploadSize, log)},
		{"product", producthandler.New(client, renderer, tracker, authGuard, cfg.API.MaxUploadSize, log)},
	}

	for _, screen := range screens {
		log.Info("register handlers", zap.String("group", screen.name))
		screen.handler.Register(router)
	}

	return router, nil
}

func (a *App) MustRun() {
	if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic("failed to start server: " + err.Error())
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.HTTPServer.Shutdown(ctx)
}

func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.String("remote", r.RemoteAddr),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
