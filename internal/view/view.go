// Package view renders the console screens from embedded templates.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-chi/render"
	"github.com/xw1nchester/foodkart-vendor/internal/notify"
	"github.com/xw1nchester/foodkart-vendor/internal/session"
	"go.uber.org/zap"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

const layoutFile = "templates/layout.gohtml"

const (
	PageLogin      = "login"
	PageSignin     = "signin"
	PageHome       = "home"
	PageAddFirm    = "add_firm"
	PageAddProduct = "add_product"
	PageProducts   = "products"
	PageNotFound   = "not_found"
)

var pages = []string{
	PageLogin,
	PageSignin,
	PageHome,
	PageAddFirm,
	PageAddProduct,
	PageProducts,
	PageNotFound,
}

// Page is what every template receives. Data holds the screen's own values.
type Page struct {
	Title         string
	Authenticated bool
	Toasts        []notify.Toast
	Data          any
}

type Renderer struct {
	templates map[string]*template.Template
	logger    *zap.Logger
}

// New parses every page together with the shared layout once, so requests only execute templates.
func New(logger *zap.Logger) (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))

	for _, page := range pages {
		tmpl, err := template.ParseFS(templateFS, layoutFile, "templates/"+page+".gohtml")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", page, err)
		}
		templates[page] = tmpl
	}

	return &Renderer{
		templates: templates,
		logger:    logger,
	}, nil
}

// Render writes page with status. Toasts queued for this request are drained into the page.
func (v *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, page, title string, data any) error {
	tmpl, ok := v.templates[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	view := Page{
		Title:         title,
		Authenticated: session.FromContext(r.Context()).Authenticated(),
		Data:          data,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", withToasts(view, w, r)); err != nil {
		return fmt.Errorf("failed to execute %s template: %w", page, err)
	}

	render.Status(r, status)
	render.HTML(w, r, buf.String())

	return nil
}

func withToasts(p Page, w http.ResponseWriter, r *http.Request) Page {
	p.Toasts = notify.FromContext(r.Context()).Drain(w)
	return p
}

// Redirect stores pending toasts in the flash cookie and sends the browser to target.
func (v *Renderer) Redirect(w http.ResponseWriter, r *http.Request, target string) {
	if err := notify.FromContext(r.Context()).Persist(w); err != nil {
		v.logger.Warn("failed to persist toasts", zap.Error(err))
	}

	http.Redirect(w, r, target, session.RedirectStatus(r))
}

// NotFound renders the 404 screen.
func (v *Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	if err := v.Render(w, r, http.StatusNotFound, PageNotFound, "Page Not Found", nil); err != nil {
		v.logger.Error("failed to render not found page", zap.Error(err))
		http.NotFound(w, r)
	}
}

// Static serves the embedded stylesheet and scripts under the prefix it is mounted on.
func Static(prefix string) http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	return http.StripPrefix(prefix, http.FileServer(http.FS(sub)))
}
