package api

import (
	"context"
	"net/http"

	"github.com/xw1nchester/foodkart-vendor/internal/product"
)

func (c *Client) CreateProduct(ctx context.Context, token, firmID string, req product.CreateRequest) (*MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp MessageResponse
	if err := c.doMultipart(ctx, "/product/add-product/"+pathID(firmID), token, req.Fields(), req.Image, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) ListProducts(ctx context.Context, token, firmID string) (*product.ListResponse, error) {
	var resp product.ListResponse
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/product/" + pathID(firmID) + "/products",
		token:  token,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) DeleteProduct(ctx context.Context, token, productID string) (*MessageResponse, error) {
	var resp MessageResponse
	err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/product/" + pathID(productID),
		token:  token,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
