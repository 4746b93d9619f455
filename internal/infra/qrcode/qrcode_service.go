package qrcode

import (
	"encoding/json"
	"strings"

	"subsplit/config"
	"subsplit/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	friendPayloadType = "friend"
	defaultSize       = 256
)

var ErrInvalidPayload = errors.New("invalid friend QR payload")

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// FriendQRData is the JSON carried by a friend invite code.
type FriendQRData struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewQRCodeServiceFromConfig reads the qrcode section, using defaults when it is absent.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateFriendQR renders identifier as a PNG friend invite code.
func (s *qrcodeService) GenerateFriendQR(identifier string) ([]byte, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, errors.Wrap(ErrInvalidPayload, "empty identifier")
	}

	jsonData, err := json.Marshal(FriendQRData{
		Type:       friendPayloadType,
		Identifier: identifier,
	})
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

// ParseFriendQR returns the identifier of a scanned friend invite code.
// A bare wallet address or email is accepted as well.
func (s *qrcodeService) ParseFriendQR(payload string) (string, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return "", ErrInvalidPayload
	}

	if !strings.HasPrefix(payload, "{") {
		return payload, nil
	}

	var data FriendQRData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return "", errors.Wrap(ErrInvalidPayload, err.Error())
	}

	if data.Type != friendPayloadType {
		return "", errors.Wrapf(ErrInvalidPayload, "unexpected type %q", data.Type)
	}

	if strings.TrimSpace(data.Identifier) == "" {
		return "", errors.Wrap(ErrInvalidPayload, "missing identifier")
	}

	return strings.TrimSpace(data.Identifier), nil
}
