package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/xw1nchester/foodkart-vendor/internal/apperror"
	"github.com/xw1nchester/foodkart-vendor/internal/auth"
	"github.com/xw1nchester/foodkart-vendor/internal/vendor"
)

var errNoToken = errors.New("login response did not include a token")

// Login exchanges credentials for a session token and the vendor id.
func (c *Client) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp auth.LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/vendor/login", req, &resp); err != nil {
		return nil, err
	}

	if resp.Token == "" {
		return nil, apperror.NewTransportError(errNoToken)
	}

	return &resp, nil
}

func (c *Client) Register(ctx context.Context, req auth.RegisterRequest) (*MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp MessageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/vendor/register", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) GetVendor(ctx context.Context, token, vendorID string) (*vendor.Vendor, error) {
	var resp vendor.Response
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/vendor/single-vendor/" + pathID(vendorID),
		token:  token,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp.Vendor, nil
}
