package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

// MaxUploadSize caps a single uploaded file.
const MaxUploadSize = 10 << 20

var (
	// ErrEmptyFile is returned for zero-byte uploads.
	ErrEmptyFile = errors.New("empty file")
	// ErrFileTooLarge is returned when an upload exceeds MaxUploadSize.
	ErrFileTooLarge = errors.New("file too large")
	// ErrNotImage is returned when the bytes do not decode as a supported image.
	ErrNotImage = errors.New("file is not a supported image")
	// ErrNotPDF is returned when a résumé upload is not a PDF document.
	ErrNotPDF = errors.New("file is not a pdf document")
)

// BlobStore persists uploaded files and returns their public URL.
type BlobStore interface {
	Put(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// Image describes a validated image upload.
type Image struct {
	Format string
	Width  int
	Height int
}

// InspectImage checks that data decodes as png, jpeg, gif or webp.
func InspectImage(data []byte) (Image, error) {
	if err := checkSize(data); err != nil {
		return Image{}, err
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrNotImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Image{}, ErrNotImage
	}
	return Image{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// InspectPDF checks the PDF magic header.
func InspectPDF(data []byte) error {
	if err := checkSize(data); err != nil {
		return err
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return ErrNotPDF
	}
	return nil
}

func checkSize(data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFile
	}
	if len(data) > MaxUploadSize {
		return ErrFileTooLarge
	}
	return nil
}

// GenerateName builds a unique object name such as "profile-20250101-<uuid>.png".
func GenerateName(kind, originalName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(originalName)))
	if len(ext) > 8 || strings.ContainsAny(ext, `/\ `) {
		ext = ""
	}
	kind = strings.Trim(strings.ToLower(strings.TrimSpace(kind)), "-")
	if kind == "" {
		kind = "file"
	}
	return fmt.Sprintf("%s-%s-%s%s", kind, now.Format("20060102"), uuid.NewString(), ext)
}
