// Package api calls the remote FoodKart API on behalf of a vendor.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/xw1nchester/foodkart-vendor/internal/apperror"
	"github.com/xw1nchester/foodkart-vendor/internal/config"
	"github.com/xw1nchester/foodkart-vendor/internal/upload"
	"go.uber.org/zap"
)

const (
	// TokenHeader carries the session token. The API does not use the Authorization header.
	TokenHeader     = "token"
	RequestIDHeader = "X-Request-ID"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func New(cfg config.API, logger *zap.Logger) *Client {
	return NewWithHTTPClient(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout}, logger)
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

type request struct {
	method      string
	path        string
	token       string
	body        io.Reader
	contentType string
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, req.body)
	if err != nil {
		return apperror.NewTransportError(err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(RequestIDHeader, requestID(ctx))
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	if req.token != "" {
		httpReq.Header.Set(TokenHeader, req.token)
	}

	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("api request failed",
			zap.String("method", req.method),
			zap.String("path", req.path),
			zap.Error(err),
		)
		return apperror.NewTransportError(err)
	}
	defer resp.Body.Close()

	c.logger.Debug("api request",
		zap.String("method", req.method),
		zap.String("path", req.path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var envelope MessageResponse
		if err := render.DecodeJSON(resp.Body, &envelope); err != nil {
			return apperror.NewTransportError(fmt.Errorf("failed to decode error response: %w", err))
		}

		c.logger.Info("api rejected request",
			zap.String("path", req.path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", envelope.Message),
		)

		return apperror.NewServerError(resp.StatusCode, envelope.Message)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := render.DecodeJSON(resp.Body, out); err != nil {
		return apperror.NewTransportError(fmt.Errorf("failed to decode response: %w", err))
	}

	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return apperror.NewTransportError(err)
	}

	return c.do(ctx, request{
		method:      method,
		path:        path,
		body:        bytes.NewReader(body),
		contentType: "application/json",
	}, out)
}

// doMultipart sends fields followed by the image part named "image".
func (c *Client) doMultipart(ctx context.Context, path, token string, fields url.Values, image *upload.File, out any) error {
	body, contentType, err := encodeMultipart(fields, image)
	if err != nil {
		return apperror.NewTransportError(err)
	}

	return c.do(ctx, request{
		method:      http.MethodPost,
		path:        path,
		token:       token,
		body:        body,
		contentType: contentType,
	}, out)
}

func encodeMultipart(fields url.Values, image *upload.File) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, name := range slices.Sorted(maps.Keys(fields)) {
		for _, value := range fields[name] {
			if err := writer.WriteField(name, value); err != nil {
				return nil, "", err
			}
		}
	}

	if image != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, escapeQuotes(image.Name)))
		header.Set("Content-Type", image.ContentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, image.Reader()); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return body, writer.FormDataContentType(), nil
}

func requestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

func pathID(id string) string {
	return url.PathEscape(id)
}
