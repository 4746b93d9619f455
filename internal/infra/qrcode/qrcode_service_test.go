package qrcode

import (
	"encoding/json"
	"testing"

	"subsplit/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "h"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestNewQRCodeServiceFromConfig_MissingSection(t *testing.T) {
	service := NewQRCodeServiceFromConfig(&config.Config{}).(*qrcodeService)
	assert.Equal(t, defaultSize, service.size)
}

func TestQRCodeService_GenerateFriendQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateFriendQR("0xabc123")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateFriendQR_EmptyIdentifier(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateFriendQR("   ")
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestQRCodeService_ParseFriendQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	valid, err := json.Marshal(FriendQRData{Type: "friend", Identifier: "alice@example.com"})
	require.NoError(t, err)
	wrongType, err := json.Marshal(FriendQRData{Type: "subscription", Identifier: "x"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload string
		want    string
		wantErr bool
	}{
		{name: "json payload", payload: string(valid), want: "alice@example.com"},
		{name: "bare wallet", payload: " 0xABC ", want: "0xABC"},
		{name: "wrong type", payload: string(wrongType), wantErr: true},
		{name: "broken json", payload: "{not json", wantErr: true},
		{name: "missing identifier", payload: `{"type":"friend"}`, wantErr: true},
		{name: "empty", payload: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseFriendQR(tt.payload)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPayload)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
