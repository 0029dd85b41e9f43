package upload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/xw1nchester/foodkart-vendor/internal/apperror"
)

// AllowedExtensions mirrors the accept attribute of the image inputs.
var AllowedExtensions = []string{".jpg", ".jpeg", ".png"}

// File is an image picked in the browser, held in memory until it is forwarded to the API.
type File struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	Content     []byte `json:"-"`
}

func (f *File) Reader() io.Reader {
	return bytes.NewReader(f.Content)
}

// FromRequest reads the named file field of a parsed multipart form. A missing or empty file
// yields (nil, nil) so that required-field validation can report it.
func FromRequest(r *http.Request, field string, maxSize int64) (*File, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to retrieve file: %w", err)
	}
	defer file.Close()

	if header.Size == 0 && header.Filename == "" {
		return nil, nil
	}

	return read(file, header, maxSize)
}

func read(file multipart.File, header *multipart.FileHeader, maxSize int64) (*File, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowed(ext) {
		return nil, apperror.ErrUnsupportedFile
	}

	if maxSize > 0 && header.Size > maxSize {
		return nil, apperror.ErrFileTooLarge
	}

	var reader io.Reader = file
	if maxSize > 0 {
		reader = io.LimitReader(file, maxSize+1)
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if maxSize > 0 && int64(len(content)) > maxSize {
		return nil, apperror.ErrFileTooLarge
	}

	if len(content) == 0 {
		return nil, nil
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mime.TypeByExtension(ext)
	}
	if contentType == "" {
		contentType = http.DetectContentType(content)
	}

	return &File{
		Name:        filepath.Base(header.Filename),
		ContentType: contentType,
		Size:        int64(len(content)),
		Content:     content,
	}, nil
}

func allowed(ext string) bool {
	for _, a := range AllowedExtensions {
		if ext == a {
			return true
		}
	}
	return false
}
