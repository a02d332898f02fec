package qrcode

import (
	"testing"

	"lawyerup/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(size int, level, baseURL string) *config.Config {
	return &config.Config{QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level, BaseURL: baseURL}}
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name  string
		cfg   *config.Config
		size  int
		level qrcode.RecoveryLevel
	}{
		{"Low error correction", testConfig(256, "L", ""), 256, qrcode.Low},
		{"Medium error correction", testConfig(256, "M", ""), 256, qrcode.Medium},
		{"High error correction", testConfig(256, "Q", ""), 256, qrcode.High},
		{"Highest error correction", testConfig(128, "h", ""), 128, qrcode.Highest},
		{"Default error correction", testConfig(256, "invalid", ""), 256, qrcode.Medium},
		{"Missing section", &config.Config{}, defaultSize, qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.cfg).(*qrcodeService)
			assert.Equal(t, tt.size, svc.size)
			assert.Equal(t, tt.level, svc.errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_GenerateProfileQR(t *testing.T) {
	svc := NewQRCodeService(testConfig(256, "M", "http://localhost:8080/api/v1/lawyers/"))

	qrBytes, err := svc.GenerateProfileQR("l1")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])

	_, err = svc.GenerateProfileQR("")
	assert.Error(t, err)
}

func TestQRCodeService_ProfileURL(t *testing.T) {
	svc := NewQRCodeService(testConfig(256, "M", "https://lawyerup.example/lawyers/")).(*qrcodeService)

	assert.Equal(t, "https://lawyerup.example/lawyers", svc.baseURL)
}
