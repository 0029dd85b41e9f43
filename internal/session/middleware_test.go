package session_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/xw1nchester/foodkart-vendor/internal/session"
	mocksession "github.com/xw1nchester/foodkart-vendor/internal/session/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestGuard(t *testing.T) {
	guardedPaths := []string{"/", "/add-firm", "/add-product", "/products"}

	tests := []struct {
		name             string
		token            string
		method           string
		expectedStatus   int
		expectedLocation string
	}{
		{name: "no token", method: http.MethodGet, expectedStatus: http.StatusFound, expectedLocation: "/login"},
		{name: "no token post", method: http.MethodPost, expectedStatus: http.StatusSeeOther, expectedLocation: "/login"},
		{name: "token", token: "T1", method: http.MethodGet, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		for _, path := range guardedPaths {
			t.Run(tt.name+" "+path, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				store := mocksession.NewMockStore(ctrl)
				store.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ *http.Request, key session.Key) (string, error) {
						if key == session.KeyToken && tt.token != "" {
							return tt.token, nil
						}
						return "", session.ErrNoValue
					},
				).Times(len(session.Keys))

				router := chi.NewRouter()
				router.Use(session.Provider(store, time.Hour, zap.NewNop()))
				router.Group(func(r chi.Router) {
					r.Use(session.Guard("/login"))
					r.MethodFunc(tt.method, path, func(w http.ResponseWriter, r *http.Request) {
						w.WriteHeader(http.StatusOK)
					})
				})

				rec := httptest.NewRecorder()
				router.ServeHTTP(rec, httptest.NewRequest(tt.method, path, nil))

				assert.Equal(t, tt.expectedStatus, rec.Code)
				assert.Equal(t, tt.expectedLocation, rec.Header().Get("Location"))
			})
		}
	}
}

func TestRedirectAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocksession.NewMockStore(ctrl)
	store.EXPECT().Get(gomock.Any(), session.KeyToken).Return("T1", nil)
	store.EXPECT().Get(gomock.Any(), gomock.Not(session.KeyToken)).Return("", session.ErrNoValue).Times(2)

	reached := false
	handler := session.Provider(store, time.Hour, zap.NewNop())(
		session.RedirectAuthenticated("/")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
		})),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.False(t, reached)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestProvider_DropsInvalidCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocksession.NewMockStore(ctrl)
	store.EXPECT().Get(gomock.Any(), session.KeyToken).Return("", errors.New("securecookie: the value is not valid"))
	store.EXPECT().Get(gomock.Any(), session.KeyVendorID).Return("V1", nil)
	store.EXPECT().Get(gomock.Any(), session.KeyFirmID).Return("", session.ErrNoValue)
	store.EXPECT().Remove(gomock.Any(), session.KeyToken)

	var got *session.Session
	handler := session.Provider(store, time.Hour, zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = session.FromContext(r.Context())
		}),
	)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, got.Authenticated())
	assert.Equal(t, "V1", got.VendorID())
}
