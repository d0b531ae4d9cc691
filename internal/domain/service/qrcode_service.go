// Package service defines domain service interfaces implemented by the infrastructure layer.
package service

// QRCodeService generates QR codes for product share links, used by the
// mobile app to deep-link into a product page.
type QRCodeService interface {
	// GenerateProductQR returns a PNG-encoded QR code pointing at the
	// product's public page.
	GenerateProductQR(productID int64) ([]byte, error)
}
