package service

// QRCodeService defines the interface for lawyer profile share codes.
type QRCodeService interface {
	// GenerateProfileQR renders a PNG QR code pointing at a lawyer's public profile.
	GenerateProfileQR(lawyerID string) ([]byte, error)
}
