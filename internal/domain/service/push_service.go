package service

import (
	"context"
)

// PushService delivers push notifications to device tokens.
type PushService interface {
	// SendBatchNotification sends to up to 500 tokens and reports the tokens
	// the provider rejected as unregistered.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
