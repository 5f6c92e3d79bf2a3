package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/you/scandine/domain"
)

// GeneratorImpl implements domain.QRGenerator
type GeneratorImpl struct {
	size int
}

// NewGenerator creates a new QR code generator
func NewGenerator() domain.QRGenerator {
	return &GeneratorImpl{size: 256}
}

// DataURI implements domain.QRGenerator
func (g *GeneratorImpl) DataURI(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, g.size)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
