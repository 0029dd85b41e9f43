package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xw1nchester/foodkart-vendor/internal/apperror"
	"github.com/xw1nchester/foodkart-vendor/internal/firm"
	"github.com/xw1nchester/foodkart-vendor/internal/handlers"
	"github.com/xw1nchester/foodkart-vendor/internal/inflight"
	"github.com/xw1nchester/foodkart-vendor/internal/notify"
	"github.com/xw1nchester/foodkart-vendor/internal/session"
	"github.com/xw1nchester/foodkart-vendor/internal/upload"
	"github.com/xw1nchester/foodkart-vendor/internal/view"
	"github.com/xw1nchester/foodkart-vendor/pkg/utils"
	"go.uber.org/zap"
)

const (
	AddFirmPath = "/add-firm"
	HomePath    = "/"

	alreadyHasFirmMessage = "You already have firm!"

	// formOverhead leaves room for the text fields next to the image.
	formOverhead = 1 << 20
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockfirmservice
type Service interface {
	CreateFirm(ctx context.Context, token string, dto firm.CreateRequest) (*firm.CreateResponse, error)
}

type handler struct {
	service       Service
	renderer      *view.Renderer
	tracker       *inflight.Tracker
	authGuard     func(http.Handler) http.Handler
	maxUploadSize int64
	logger        *zap.Logger
}

func New(
	service Service,
	renderer *view.Renderer,
	tracker *inflight.Tracker,
	authGuard func(http.Handler) http.Handler,
	maxUploadSize int64,
	logger *zap.Logger,
) handlers.Handler {
	return &handler{
		service:       service,
		renderer:      renderer,
		tracker:       tracker,
		authGuard:     authGuard,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Group(func(privateRouter chi.Router) {
		privateRouter.Use(h.authGuard, h.requireNoFirm)

		privateRouter.Get(AddFirmPath, apperror.Middleware(h.logger, h.addFirmPageHandler))
		privateRouter.Post(AddFirmPath, apperror.Middleware(h.logger, h.addFirmHandler))
	})
}

// requireNoFirm keeps a vendor to a single firm.
func (h *handler) requireNoFirm(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if session.FromContext(r.Context()).HasFirm() {
			notify.Warning(r.Context(), alreadyHasFirmMessage)
			h.renderer.Redirect(w, r, HomePath)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type addFirmPage struct {
	Form       firm.CreateRequest
	Categories []firm.Option
	Regions    []firm.Option
	Error      string
}

func newPage(form firm.CreateRequest) addFirmPage {
	return addFirmPage{
		Form:       form,
		Categories: firm.Categories,
		Regions:    firm.Regions,
	}
}

func (h *handler) addFirmPageHandler(w http.ResponseWriter, r *http.Request) error {
	return h.renderer.Render(w, r, http.StatusOK, view.PageAddFirm, "Add Firm", newPage(firm.CreateRequest{}))
}

// addFirmHandler reports every failure inline only; the add-firm screen raises no error toasts.
func (h *handler) addFirmHandler(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	s := session.FromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+formOverhead)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return h.renderFailure(w, r, newPage(firm.CreateRequest{}), apperror.ErrFileTooLarge)
		}
		return apperror.NewValidationError("failed to parse form")
	}
	defer r.MultipartForm.RemoveAll()

	dto := firm.CreateRequest{
		FirmName: r.PostFormValue("firmName"),
		Area:     r.PostFormValue("area"),
		Offer:    r.PostFormValue("offer"),
		Category: utils.CleanStrings(r.PostForm["category"]),
		Region:   utils.CleanStrings(r.PostForm["region"]),
	}
	page := newPage(dto)

	image, fileErr := upload.FromRequest(r, "image", h.maxUploadSize)
	dto.Image = image
	if fileErr != nil {
		// a rejected image still counts as picked, missing text fields are reported first
		dto.Image = &upload.File{}
	}

	if err := dto.Validate(); err != nil {
		return h.renderFailure(w, r, page, err)
	}
	if fileErr != nil {
		return h.renderFailure(w, r, page, fileErr)
	}

	done, ok := h.tracker.Begin(inflight.Key("add-firm", s.Token()))
	if !ok {
		return h.renderFailure(w, r, page, apperror.ErrInProgress)
	}
	defer done()

	resp, err := h.service.CreateFirm(ctx, s.Token(), dto)
	if err != nil {
		h.logger.Warn("failed to create firm", zap.Error(err))
		return h.renderFailure(w, r, page, err)
	}

	if err := s.SetFirmID(resp.FirmID); err != nil {
		return fmt.Errorf("failed to store firm id: %w", err)
	}

	notify.Success(ctx, resp.Message)
	h.renderer.Redirect(w, r, HomePath)

	return nil
}

func (h *handler) renderFailure(w http.ResponseWriter, r *http.Request, page addFirmPage, err error) error {
	page.Error = notify.Inline(err)
	return h.renderer.Render(w, r, apperror.Status(err), view.PageAddFirm, "Add Firm", page)
}
