package api

import (
	"context"
	"net/http"

	"github.com/xw1nchester/foodkart-vendor/internal/firm"
)

func (c *Client) CreateFirm(ctx context.Context, token string, req firm.CreateRequest) (*firm.CreateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp firm.CreateResponse
	if err := c.doMultipart(ctx, "/firm/add-firm", token, req.Fields(), req.Image, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) DeleteFirm(ctx context.Context, token, firmID string) (*MessageResponse, error) {
	var resp MessageResponse
	err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/firm/" + pathID(firmID),
		token:  token,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
