// Package qr generates printable QR code labels that deep-link to a
// gemstone's detail view.
package qr

import (
	"fmt"
	"os"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the rendered label size in pixels.
const DefaultSize = 256

// Payload is the URL a scanned label resolves to.
func Payload(baseURL, id string) string {
	return strings.TrimRight(baseURL, "/") + "/gemstone/" + id
}

// PNG renders the label for the given payload as a PNG of size x size pixels.
func PNG(payload string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	data, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return data, nil
}

// FileName derives the download file name for a gemstone's label, e.g.
// "blue-sapphire-qr-code.png".
func FileName(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastDash := true
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	out := strings.TrimRight(b.String(), "-")
	if out == "" {
		out = "gemstone"
	}
	return out + "-qr-code.png"
}

// WriteFile renders the label for payload and writes it to path.
func WriteFile(path, payload string, size int) error {
	data, err := PNG(payload, size)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write qr code: %w", err)
	}
	return nil
}
