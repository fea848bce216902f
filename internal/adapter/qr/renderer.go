// Package qr renders login payloads as QR code images.
package qr

import (
	"encoding/base64"
	"fmt"

	"blaze-custody/internal/core/ports"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	minSize     = 64
)

// Renderer implements ports.QRRenderer with go-qrcode.
type Renderer struct {
	level qrcode.RecoveryLevel
}

var _ ports.QRRenderer = (*Renderer)(nil)

// NewRenderer uses medium error correction, enough for a phone camera
// reading a screen.
func NewRenderer() *Renderer {
	return &Renderer{level: qrcode.Medium}
}

// RenderPNG encodes payload as a size x size PNG. Sizes below the minimum
// fall back to the default.
func (r *Renderer) RenderPNG(payload string, size int) ([]byte, error) {
	if payload == "" {
		return nil, fmt.Errorf("empty qr payload")
	}
	if size < minSize {
		size = defaultSize
	}

	code, err := qrcode.New(payload, r.level)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}
	png, err := code.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}
	return png, nil
}

// DataURL wraps a PNG for inline display.
func DataURL(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
