package qrcode

import (
	"encoding/json"
	"net/url"
	"strings"

	"lawyerup/config"
	"lawyerup/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize       = 256
	profileQRCodeType = "lawyer_profile"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// ProfileQRData is the payload encoded in a lawyer profile QR code.
type ProfileQRData struct {
	LawyerID string `json:"lawyer_id"`
	Type     string `json:"type"`
	URL      string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance from the qrcode section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level, baseURL := defaultSize, "M", ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
		baseURL = strings.TrimRight(cfg.QRCode.BaseURL, "/")
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
		baseURL:              baseURL,
	}
}

func recoveryLevel(name string) qrcode.RecoveryLevel {
	switch strings.ToUpper(name) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateProfileQR generates a PNG QR code that points at a lawyer's profile.
func (s *qrcodeService) GenerateProfileQR(lawyerID string) ([]byte, error) {
	if lawyerID == "" {
		return nil, errors.New("lawyer id is required")
	}

	data := ProfileQRData{
		LawyerID: lawyerID,
		Type:     profileQRCodeType,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/" + url.PathEscape(lawyerID)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
