// Package notify carries toast notifications from the screens to the rendered page, across a
// redirect when needed, and is the single place where screen errors are turned into messages.
package notify

import (
	"context"
	"net/http"
	"sync"

	"github.com/xw1nchester/foodkart-vendor/internal/apperror"
	"go.uber.org/zap"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
)

const cookieName = "toasts"

type Toast struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Codec signs the flash cookie. *securecookie.SecureCookie satisfies it.
type Codec interface {
	Encode(name string, value any) (string, error)
	Decode(name, value string, dst any) error
}

type Queue struct {
	mu     sync.Mutex
	toasts []Toast
	loaded bool
	codec  Codec
	secure bool
}

type contextKey struct{}

func NewQueue(codec Codec, secure bool) *Queue {
	return &Queue{
		codec:  codec,
		secure: secure,
	}
}

func NewContext(ctx context.Context, q *Queue) context.Context {
	return context.WithValue(ctx, contextKey{}, q)
}

// FromContext returns the request queue, or a detached one that only lives for the caller.
func FromContext(ctx context.Context) *Queue {
	if q, ok := ctx.Value(contextKey{}).(*Queue); ok {
		return q
	}
	return NewQueue(nil, false)
}

func (q *Queue) Add(level Level, message string) {
	if message == "" {
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.toasts = append(q.toasts, Toast{Level: level, Message: message})
}

func (q *Queue) Pending() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Toast, len(q.toasts))
	copy(out, q.toasts)

	return out
}

// Persist stores the queued toasts in the flash cookie so they survive a redirect.
func (q *Queue) Persist(w http.ResponseWriter) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.codec == nil {
		return nil
	}

	if len(q.toasts) == 0 {
		if q.loaded {
			q.expire(w)
		}
		return nil
	}

	encoded, err := q.codec.Encode(cookieName, q.toasts)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   q.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Drain hands the queued toasts to a page that is about to render; each toast is shown once.
func (q *Queue) Drain(w http.ResponseWriter) []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.toasts
	q.toasts = nil

	if q.loaded && q.codec != nil {
		q.expire(w)
		q.loaded = false
	}

	return out
}

func (q *Queue) expire(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   q.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func Success(ctx context.Context, message string) {
	FromContext(ctx).Add(LevelSuccess, message)
}

func Error(ctx context.Context, message string) {
	FromContext(ctx).Add(LevelError, message)
}

func Warning(ctx context.Context, message string) {
	FromContext(ctx).Add(LevelWarning, message)
}

// Report returns the inline message for err and raises an error toast for failures that came
// from the API or the network. Validation failures stay inline.
func Report(ctx context.Context, err error) string {
	if err == nil {
		return ""
	}

	if apperror.KindOf(err) != apperror.KindValidation {
		Error(ctx, err.Error())
	}

	return err.Error()
}

// Inline returns the inline message for err without raising a toast.
func Inline(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Middleware restores toasts left by the previous response.
func Middleware(codec Codec, secure bool, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := NewQueue(codec, secure)

			if cookie, err := r.Cookie(cookieName); err == nil {
				q.loaded = true

				var toasts []Toast
				if err := codec.Decode(cookieName, cookie.Value, &toasts); err != nil {
					logger.Warn("dropping invalid toast cookie", zap.Error(err))
				} else {
					q.toasts = toasts
				}
			}

			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), q)))
		})
	}
}
