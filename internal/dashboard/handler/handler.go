// Package handler serves the vendor dashboard: the firm card and firm deletion.
package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xw1nchester/foodkart-vendor/internal/api"
	"github.com/xw1nchester/foodkart-vendor/internal/apperror"
	"github.com/xw1nchester/foodkart-vendor/internal/firm"
	"github.com/xw1nchester/foodkart-vendor/internal/handlers"
	"github.com/xw1nchester/foodkart-vendor/internal/inflight"
	"github.com/xw1nchester/foodkart-vendor/internal/notify"
	"github.com/xw1nchester/foodkart-vendor/internal/session"
	"github.com/xw1nchester/foodkart-vendor/internal/vendor"
	"github.com/xw1nchester/foodkart-vendor/internal/view"
	"go.uber.org/zap"
)

const (
	HomePath       = "/"
	DeleteFirmPath = "/firm/delete"

	confirmParam      = "confirm"
	confirmDeleteFirm = "delete-firm"
)

const (
	deleteFirmFailedMessage = "Error while deleting firm"
	noFirmMessage           = "Please add your firm first!"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockdashboardservice
type Service interface {
	GetVendor(ctx context.Context, token, vendorID string) (*vendor.Vendor, error)
	DeleteFirm(ctx context.Context, token, firmID string) (*api.MessageResponse, error)
}

type handler struct {
	service   Service
	renderer  *view.Renderer
	tracker   *inflight.Tracker
	authGuard func(http.Handler) http.Handler
	logger    *zap.Logger
}

func New(
	service Service,
	renderer *view.Renderer,
	tracker *inflight.Tracker,
	authGuard func(http.Handler) http.Handler,
	logger *zap.Logger,
) handlers.Handler {
	return &handler{
		service:   service,
		renderer:  renderer,
		tracker:   tracker,
		authGuard: authGuard,
		logger:    logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Group(func(privateRouter chi.Router) {
		privateRouter.Use(h.authGuard)

		privateRouter.Get(HomePath, apperror.Middleware(h.logger, h.homeHandler))
		privateRouter.Post(DeleteFirmPath, apperror.Middleware(h.logger, h.deleteFirmHandler))
	})
}

type homePage struct {
	Username      string
	Firm          *firm.Firm
	ConfirmDelete bool
}

// homeHandler renders the dashboard and keeps the firm id in the session in step with the API.
// A failed vendor lookup degrades to the no-firm view.
func (h *handler) homeHandler(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	s := session.FromContext(ctx)

	var page homePage

	if v := h.loadVendor(ctx, s); v != nil {
		page.Username = v.Username

		if v.HasFirm() {
			page.Firm = v.Firm.Firm
			if err := s.SetFirmID(v.Firm.ID); err != nil {
				return fmt.Errorf("failed to store firm id: %w", err)
			}
		} else if s.HasFirm() {
			s.ClearFirm()
		}
	}

	page.ConfirmDelete = page.Firm != nil && r.URL.Query().Get(confirmParam) == confirmDeleteFirm

	return h.renderer.Render(w, r, http.StatusOK, view.PageHome, "Dashboard", page)
}

func (h *handler) loadVendor(ctx context.Context, s *session.Session) *vendor.Vendor {
	if s.VendorID() == "" {
		h.logger.Warn("session has no vendor id")
		return nil
	}

	v, err := h.service.GetVendor(ctx, s.Token(), s.VendorID())
	if err != nil {
		h.logger.Warn("failed to load vendor",
			zap.String("vendor_id", s.VendorID()),
			zap.Stringer("kind", apperror.KindOf(err)),
			zap.Error(err),
		)
		return nil
	}

	return v
}

func (h *handler) deleteFirmHandler(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	s := session.FromContext(ctx)

	if !s.HasFirm() {
		notify.Error(ctx, noFirmMessage)
		h.renderer.Redirect(w, r, HomePath)
		return nil
	}

	done, ok := h.tracker.Begin(inflight.Key("delete-firm", s.Token()))
	if !ok {
		notify.Warning(ctx, apperror.ErrInProgress.Message)
		h.renderer.Redirect(w, r, HomePath)
		return nil
	}
	defer done()

	resp, err := h.service.DeleteFirm(ctx, s.Token(), s.FirmID())
	if err != nil {
		h.logger.Error("failed to delete firm", zap.String("firm_id", s.FirmID()), zap.Error(err))

		if apperror.KindOf(err) == apperror.KindTransport {
			notify.Error(ctx, deleteFirmFailedMessage)
		} else {
			notify.Report(ctx, err)
		}

		h.renderer.Redirect(w, r, HomePath)
		return nil
	}

	s.ClearFirm()

	notify.Success(ctx, resp.Message)
	h.renderer.Redirect(w, r, HomePath)

	return nil
}
