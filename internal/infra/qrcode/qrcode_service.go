// Package qrcode implements the QRCodeService domain interface with skip2/go-qrcode.
package qrcode

import (
	"fmt"
	"strings"

	"lelekart/internal/domain/service"

	"github.com/pkg/errors"
	qrcodelib "github.com/skip2/go-qrcode"
)

type qrCodeService struct {
	size    int
	level   qrcodelib.RecoveryLevel
	baseURL string
}

// NewQRCodeService builds a QR code service. errorCorrectionLevel accepts the
// standard L/M/Q/H labels; unknown values fall back to M.
func NewQRCodeService(size int, errorCorrectionLevel string, baseURL string) service.QRCodeService {
	return &qrCodeService{
		size:    size,
		level:   parseRecoveryLevel(errorCorrectionLevel),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GenerateProductQR returns a PNG QR code pointing at the product's public page.
func (s *qrCodeService) GenerateProductQR(productID int64) ([]byte, error) {
	url := fmt.Sprintf("%s/product/%d", s.baseURL, productID)

	png, err := qrcodelib.Encode(url, s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode QR code")
	}

	return png, nil
}

func parseRecoveryLevel(level string) qrcodelib.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcodelib.Low
	case "Q":
		return qrcodelib.High
	case "H":
		return qrcodelib.Highest
	default:
		return qrcodelib.Medium
	}
}
