package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xw1nchester/foodkart-vendor/internal/api"
	"github.com/xw1nchester/foodkart-vendor/internal/apperror"
	"github.com/xw1nchester/foodkart-vendor/internal/handlers"
	"github.com/xw1nchester/foodkart-vendor/internal/inflight"
	"github.com/xw1nchester/foodkart-vendor/internal/notify"
	"github.com/xw1nchester/foodkart-vendor/internal/product"
	"github.com/xw1nchester/foodkart-vendor/internal/session"
	"github.com/xw1nchester/foodkart-vendor/internal/upload"
	"github.com/xw1nchester/foodkart-vendor/internal/view"
	"go.uber.org/zap"
)

const (
	HomePath          = "/"
	AddProductPath    = "/add-product"
	ProductsPath      = "/products"
	DeleteProductPath = "/products/{id}/delete"

	noFirmMessage = "Please add your firm first!"

	formOverhead = 1 << 20
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockproductservice
type Service interface {
	CreateProduct(ctx context.Context, token, firmID string, dto product.CreateRequest) (*api.MessageResponse, error)
	ListProducts(ctx context.Context, token, firmID string) (*product.ListResponse, error)
	DeleteProduct(ctx context.Context, token, productID string) (*api.MessageResponse, error)
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
		privateRouter.Use(h.authGuard, h.requireFirm)

		privateRouter.Get(AddProductPath, apperror.Middleware(h.logger, h.addProductPageHandler))
		privateRouter.Post(AddProductPath, apperror.Middleware(h.logger, h.addProductHandler))

		privateRouter.Get(ProductsPath, apperror.Middleware(h.logger, h.productsHandler))
		privateRouter.Post(DeleteProductPath, apperror.Middleware(h.logger, h.deleteProductHandler))
	})
}

// requireFirm sends vendors without a firm back to the dashboard.
func (h *handler) requireFirm(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !session.FromContext(r.Context()).HasFirm() {
			notify.Error(r.Context(), noFirmMessage)
			h.renderer.Redirect(w, r, HomePath)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type addProductPage struct {
	Form  product.CreateRequest
	Error string
}

func (h *handler) addProductPageHandler(w http.ResponseWriter, r *http.Request) error {
	page := addProductPage{Form: product.NewCreateRequest()}
	return h.renderer.Render(w, r, http.StatusOK, view.PageAddProduct, "Add Product", page)
}

func (h *handler) addProductHandler(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	s := session.FromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+formOverhead)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return h.renderFailure(w, r, addProductPage{Form: product.NewCreateRequest()}, apperror.ErrFileTooLarge)
		}
		return apperror.NewValidationError("failed to parse form")
	}
	defer r.MultipartForm.RemoveAll()

	dto := product.NewCreateRequest()
	dto.ProductName = r.PostFormValue("productName")
	dto.Price = r.PostFormValue("price")
	dto.Description = r.PostFormValue("description")
	if category := r.PostFormValue("category"); category != "" {
		dto.Category = category
	}
	if bestSeller := r.PostFormValue("bestSeller"); bestSeller != "" {
		dto.BestSeller = bestSeller
	}

	page := addProductPage{Form: dto}

	image, fileErr := upload.FromRequest(r, "image", h.maxUploadSize)
	dto.Image = image
	if fileErr != nil {
		dto.Image = &upload.File{}
	}

	if err := dto.Validate(); err != nil {
		return h.renderFailure(w, r, page, err)
	}
	if fileErr != nil {
		return h.renderFailure(w, r, page, fileErr)
	}

	done, ok := h.tracker.Begin(inflight.Key("add-product", s.Token()))
	if !ok {
		return h.renderFailure(w, r, page, apperror.ErrInProgress)
	}
	defer done()

	resp, err := h.service.CreateProduct(ctx, s.Token(), s.FirmID(), dto)
	if err != nil {
		return h.renderFailure(w, r, page, err)
	}

	notify.Success(ctx, resp.Message)
	h.renderer.Redirect(w, r, HomePath)

	return nil
}

func (h *handler) renderFailure(w http.ResponseWriter, r *http.Request, page addProductPage, err error) error {
	page.Error = notify.Report(r.Context(), err)
	return h.renderer.Render(w, r, apperror.Status(err), view.PageAddProduct, "Add Product", page)
}

type productsPage struct {
	RestaurantName string
	Products       []product.Product
}

// productsHandler always refetches the whole list. A failed fetch renders the empty state.
func (h *handler) productsHandler(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	s := session.FromContext(ctx)

	var page productsPage

	resp, err := h.service.ListProducts(ctx, s.Token(), s.FirmID())
	if err != nil {
		h.logger.Warn("failed to list products",
			zap.String("firm_id", s.FirmID()),
			zap.Stringer("kind", apperror.KindOf(err)),
			zap.Error(err),
		)
	} else {
		page.RestaurantName = resp.RestaurantName
		page.Products = resp.Products
	}

	return h.renderer.Render(w, r, http.StatusOK, view.PageProducts, "Products", page)
}

func (h *handler) deleteProductHandler(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	s := session.FromContext(ctx)
	productID := chi.URLParam(r, "id")

	done, ok := h.tracker.Begin(inflight.Key("delete-product", s.Token()))
	if !ok {
		notify.Warning(ctx, apperror.ErrInProgress.Message)
		h.renderer.Redirect(w, r, ProductsPath)
		return nil
	}
	defer done()

	resp, err := h.service.DeleteProduct(ctx, s.Token(), productID)
	if err != nil {
		h.logger.Warn("failed to delete product", zap.String("product_id", productID), zap.Error(err))
		notify.Report(ctx, err)
	} else {
		notify.Success(ctx, resp.Message)
	}

	h.renderer.Redirect(w, r, ProductsPath)

	return nil
}
