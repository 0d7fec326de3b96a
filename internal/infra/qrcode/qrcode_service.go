// Package qrcode renders share codes for rental listings.
package qrcode

import (
	"encoding/json"
	"strings"

	"hive/config"
	"hive/internal/domain/service"
	"hive/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	listingQRType  = "rental_listing"
	defaultQRSize  = 256
	defaultQRLevel = "M"
)

//nolint:gochecknoglobals
var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

// ListingPayload is the JSON a listing QR code decodes to.
type ListingPayload struct {
	ListingID string `json:"listing_id"`
	Type      string `json:"type"`
	URL       string `json:"url,omitempty"`
}

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService renders size px PNGs. An unknown level means M. When
// baseURL is set the payload also links to <baseURL>/rentals/<id>.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	level, ok := recoveryLevels[strings.ToUpper(errorCorrectionLevel)]
	if !ok {
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// FromConfig reads the qrcode section, falling back to 256px at level M.
func FromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultQRSize, defaultQRLevel, "")
	}
	size := cfg.QRCode.Size
	if size <= 0 {
		size = defaultQRSize
	}

	return NewQRCodeService(size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func (s *qrcodeService) GenerateListingQR(listingID string) ([]byte, error) {
	if strings.TrimSpace(listingID) == "" {
		return nil, errors.New("listing id is required")
	}

	payload := ListingPayload{ListingID: listingID, Type: listingQRType}
	if s.baseURL != "" {
		payload.URL = s.baseURL + "/rentals/" + listingID
	}
	content, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode listing payload")
	}

	png, err := qrcode.Encode(string(content), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render QR code for listing %s", listingID)
	}

	return png, nil
}

// ParseListingQR returns the listing id of decoded QR text.
func (s *qrcodeService) ParseListingQR(qrData string) (string, error) {
	var payload ListingPayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return "", errors.Wrap(err, "QR code is not a hive payload")
	}

	switch {
	case payload.Type != listingQRType:
		return "", errors.Errorf("invalid QR code type: %s", payload.Type)
	case payload.ListingID == "":
		return "", errors.New("QR code carries no listing id")
	}

	return payload.ListingID, nil
}
