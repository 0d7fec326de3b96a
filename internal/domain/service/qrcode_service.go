package service

// QRCodeService renders share codes for listings.
type QRCodeService interface {
	// GenerateListingQR returns a PNG QR code pointing at the rental listing.
	GenerateListingQR(listingID string) ([]byte, error)

	// ParseListingQR extracts the listing id from decoded QR payload text.
	ParseListingQR(qrData string) (string, error)
}
