package service

// QRCodeService encodes a user's identifier as a friend-invite QR code.
type QRCodeService interface {
	// GenerateFriendQR returns a PNG encoding identifier.
	GenerateFriendQR(identifier string) ([]byte, error)

	// ParseFriendQR returns the identifier carried by a scanned payload.
	ParseFriendQR(payload string) (string, error)
}
