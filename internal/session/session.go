package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type contextKey struct{}

// Session is the request-scoped view of the vendor's cookies. Screens read and change the session
// only through it.
type Session struct {
	store  Store
	w      http.ResponseWriter
	ttl    time.Duration
	values map[Key]string
}

func New(store Store, w http.ResponseWriter, ttl time.Duration, values map[Key]string) *Session {
	if values == nil {
		values = make(map[Key]string)
	}

	return &Session{
		store:  store,
		w:      w,
		ttl:    ttl,
		values: values,
	}
}

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the request session. Without a Provider in the chain it returns an empty
// session whose writes are dropped.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(contextKey{}).(*Session); ok {
		return s
	}
	return New(nil, nil, 0, nil)
}

func (s *Session) Get(key Key) string {
	return s.values[key]
}

func (s *Session) Token() string {
	return s.Get(KeyToken)
}

func (s *Session) VendorID() string {
	return s.Get(KeyVendorID)
}

func (s *Session) FirmID() string {
	return s.Get(KeyFirmID)
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

func (s *Session) HasFirm() bool {
	return s.FirmID() != ""
}

func (s *Session) Set(key Key, value string) error {
	if value == "" {
		s.Remove(key)
		return nil
	}

	if s.store != nil {
		if err := s.store.Set(s.w, key, value, s.ttl); err != nil {
			return err
		}
	}

	s.values[key] = value

	return nil
}

func (s *Session) Remove(key Key) {
	if s.store != nil {
		s.store.Remove(s.w, key)
	}

	delete(s.values, key)
}

// SetAuth stores the credentials issued by a successful login.
func (s *Session) SetAuth(token, vendorID string) error {
	if err := s.Set(KeyToken, token); err != nil {
		return err
	}

	return s.Set(KeyVendorID, vendorID)
}

func (s *Session) SetFirmID(firmID string) error {
	return s.Set(KeyFirmID, firmID)
}

func (s *Session) ClearFirm() {
	s.Remove(KeyFirmID)
}

// Clear drops every session key. Nothing is sent to the API.
func (s *Session) Clear() {
	for _, key := range Keys {
		s.Remove(key)
	}
}

// Provider loads the session once per request and puts it into the request context.
// Cookies that fail verification are removed and treated as absent.
func Provider(store Store, ttl time.Duration, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			values := make(map[Key]string, len(Keys))

			for _, key := range Keys {
				value, err := store.Get(r, key)
				if err == nil {
					values[key] = value
					continue
				}

				if !errors.Is(err, ErrNoValue) {
					logger.Warn("dropping invalid session cookie", zap.String("key", string(key)), zap.Error(err))
					store.Remove(w, key)
				}
			}

			s := New(store, w, ttl, values)

			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), s)))
		})
	}
}
