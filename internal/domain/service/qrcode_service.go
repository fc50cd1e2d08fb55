package service

// QRCodeService renders share codes.
type QRCodeService interface {
	// Encode returns a PNG QR code holding content.
	Encode(content string) ([]byte, error)
}
