package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xw1nchester/foodkart-vendor/internal/api"
	"github.com/xw1nchester/foodkart-vendor/internal/apperror"
	"github.com/xw1nchester/foodkart-vendor/internal/auth"
	"github.com/xw1nchester/foodkart-vendor/internal/handlers"
	"github.com/xw1nchester/foodkart-vendor/internal/inflight"
	"github.com/xw1nchester/foodkart-vendor/internal/notify"
	"github.com/xw1nchester/foodkart-vendor/internal/session"
	"github.com/xw1nchester/foodkart-vendor/internal/view"
	"go.uber.org/zap"
)

const (
	LoginPath  = "/login"
	SigninPath = "/signin"
	LogoutPath = "/logout"
	HomePath   = "/"
)

const (
	loginSuccessMessage  = "Login Successful"
	signinSuccessMessage = "Signin Success. Please Login!"
	logoutSuccessMessage = "Logout Successful!"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockauthservice
type Service interface {
	Login(ctx context.Context, dto auth.LoginRequest) (*auth.LoginResponse, error)
	Register(ctx context.Context, dto auth.RegisterRequest) (*api.MessageResponse, error)
}

type handler struct {
	service  Service
	renderer *view.Renderer
	tracker  *inflight.Tracker
	logger   *zap.Logger
}

func New(service Service, renderer *view.Renderer, tracker *inflight.Tracker, logger *zap.Logger) handlers.Handler {
	return &handler{
		service:  service,
		renderer: renderer,
		tracker:  tracker,
		logger:   logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Group(func(publicRouter chi.Router) {
		publicRouter.Use(session.RedirectAuthenticated(HomePath))

		publicRouter.Get(LoginPath, apperror.Middleware(h.logger, h.loginPageHandler))
		publicRouter.Post(LoginPath, apperror.Middleware(h.logger, h.loginHandler))

		publicRouter.Get(SigninPath, apperror.Middleware(h.logger, h.signinPageHandler))
		publicRouter.Post(SigninPath, apperror.Middleware(h.logger, h.signinHandler))
	})

	router.Post(LogoutPath, apperror.Middleware(h.logger, h.logoutHandler))
}

type loginPage struct {
	Email string
	Error string
}

type signinPage struct {
	Username string
	Email    string
	Error    string
}

func (h *handler) loginPageHandler(w http.ResponseWriter, r *http.Request) error {
	return h.renderer.Render(w, r, http.StatusOK, view.PageLogin, "Login", loginPage{})
}

func (h *handler) loginHandler(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return apperror.NewValidationError("failed to parse form")
	}

	ctx := r.Context()

	dto := auth.LoginRequest{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	page := loginPage{Email: dto.Email}

	if err := dto.Validate(); err != nil {
		page.Error = notify.Report(ctx, err)
		return h.renderer.Render(w, r, apperror.Status(err), view.PageLogin, "Login", page)
	}

	done, ok := h.tracker.Begin(inflight.Key("login", dto.Email))
	if !ok {
		page.Error = notify.Inline(apperror.ErrInProgress)
		return h.renderer.Render(w, r, http.StatusConflict, view.PageLogin, "Login", page)
	}
	defer done()

	resp, err := h.service.Login(ctx, dto)
	if err != nil {
		page.Error = notify.Report(ctx, err)
		return h.renderer.Render(w, r, apperror.Status(err), view.PageLogin, "Login", page)
	}

	if err := session.FromContext(ctx).SetAuth(resp.Token, resp.ID); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	h.logger.Info("vendor logged in", zap.String("vendor_id", resp.ID))

	notify.Success(ctx, loginSuccessMessage)
	h.renderer.Redirect(w, r, HomePath)

	return nil
}

func (h *handler) signinPageHandler(w http.ResponseWriter, r *http.Request) error {
	return h.renderer.Render(w, r, http.StatusOK, view.PageSignin, "Sign in", signinPage{})
}

func (h *handler) signinHandler(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return apperror.NewValidationError("failed to parse form")
	}

	ctx := r.Context()

	dto := auth.RegisterRequest{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	page := signinPage{Username: dto.Username, Email: dto.Email}

	if err := dto.Validate(); err != nil {
		page.Error = notify.Report(ctx, err)
		return h.renderer.Render(w, r, apperror.Status(err), view.PageSignin, "Sign in", page)
	}

	done, ok := h.tracker.Begin(inflight.Key("register", dto.Email))
	if !ok {
		page.Error = notify.Inline(apperror.ErrInProgress)
		return h.renderer.Render(w, r, http.StatusConflict, view.PageSignin, "Sign in", page)
	}
	defer done()

	if _, err := h.service.Register(ctx, dto); err != nil {
		page.Error = notify.Report(ctx, err)
		return h.renderer.Render(w, r, apperror.Status(err), view.PageSignin, "Sign in", page)
	}

	notify.Success(ctx, signinSuccessMessage)
	h.renderer.Redirect(w, r, LoginPath)

	return nil
}

// logoutHandler only forgets the local session; the API keeps no logout endpoint.
func (h *handler) logoutHandler(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	session.FromContext(ctx).Clear()

	notify.Success(ctx, logoutSuccessMessage)
	h.renderer.Redirect(w, r, LoginPath)

	return nil
}
