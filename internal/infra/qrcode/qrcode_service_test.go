package qrcode

import (
	"testing"

	"wedump/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestNewQRCodeService_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			svc := newQRCodeService(256, tt.level)
			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_Encode(t *testing.T) {
	cfg := &config.Config{Share: &config.ShareConfig{QRSize: 128, QRLevel: "M"}}
	svc := NewQRCodeService(cfg)

	png, err := svc.Encode("https://example.com/media/photos/u1/1_cat.png?token=abc")
	require.NoError(t, err)
	require.Greater(t, len(png), len(pngMagic))
	assert.Equal(t, pngMagic, png[:len(pngMagic)])
}

func TestQRCodeService_EncodeDifferentSizes(t *testing.T) {
	small, err := newQRCodeService(128, "M").Encode("photo")
	require.NoError(t, err)

	large, err := newQRCodeService(512, "M").Encode("photo")
	require.NoError(t, err)

	assert.Greater(t, len(large), len(small))
}

func TestQRCodeService_EncodeEmpty(t *testing.T) {
	_, err := newQRCodeService(256, "M").Encode("")
	assert.Error(t, err)
}
