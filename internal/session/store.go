package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/xw1nchester/foodkart-vendor/internal/config"
)

type Key string

const (
	KeyToken    Key = "token"
	KeyVendorID Key = "vendorId"
	KeyFirmID   Key = "firmId"
)

// Keys lists every value the console keeps in the browser.
var Keys = []Key{KeyToken, KeyVendorID, KeyFirmID}

var ErrNoValue = errors.New("session: no value")

//go:generate mockgen -source=store.go -destination=mocks/mock.go -package=mocksession
type Store interface {
	Get(r *http.Request, key Key) (string, error)
	Set(w http.ResponseWriter, key Key, value string, ttl time.Duration) error
	Remove(w http.ResponseWriter, key Key)
}

// CookieStore keeps one signed cookie per key. Expiry is left to the cookie's own Max-Age.
type CookieStore struct {
	codec  *securecookie.SecureCookie
	secure bool
}

func NewCookieStore(codec *securecookie.SecureCookie, secure bool) *CookieStore {
	return &CookieStore{
		codec:  codec,
		secure: secure,
	}
}

// NewCodec builds the cookie codec shared by the session store and flash toasts.
// A missing hash key is replaced by a random one.
func NewCodec(cfg config.Session) (*securecookie.SecureCookie, error) {
	hashKey := []byte(cfg.HashKey)
	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(32)
		if hashKey == nil {
			return nil, errors.New("failed to generate session hash key")
		}
	}

	var blockKey []byte
	if cfg.BlockKey != "" {
		blockKey = []byte(cfg.BlockKey)
		switch len(blockKey) {
		case 16, 24, 32:
		default:
			return nil, fmt.Errorf("session block key must be 16, 24 or 32 bytes, got %d", len(blockKey))
		}
	}

	codec := securecookie.New(hashKey, blockKey)
	codec.MaxAge(int(cfg.TTL.Seconds()))
	codec.SetSerializer(securecookie.JSONEncoder{})

	return codec, nil
}

func (s *CookieStore) Get(r *http.Request, key Key) (string, error) {
	cookie, err := r.Cookie(string(key))
	if err != nil {
		return "", ErrNoValue
	}

	var value string
	if err := s.codec.Decode(string(key), cookie.Value, &value); err != nil {
		return "", fmt.Errorf("failed to decode %s cookie: %w", key, err)
	}

	if value == "" {
		return "", ErrNoValue
	}

	return value, nil
}

func (s *CookieStore) Set(w http.ResponseWriter, key Key, value string, ttl time.Duration) error {
	encoded, err := s.codec.Encode(string(key), value)
	if err != nil {
		return fmt.Errorf("failed to encode %s cookie: %w", key, err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     string(key),
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func (s *CookieStore) Remove(w http.ResponseWriter, key Key) {
	http.SetCookie(w, &http.Cookie{
		Name:     string(key),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
