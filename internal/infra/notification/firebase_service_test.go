package notification

import (
	"context"
	"fmt"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	batches [][]string
	fail    map[string]error
}

func (f *fakeSender) Send(ctx context.Context, message *messaging.Message) (string, error) {
	return "msg-id", nil
}

func (f *fakeSender) SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.batches = append(f.batches, message.Tokens)

	response := &messaging.BatchResponse{}
	for _, token := range message.Tokens {
		if err, ok := f.fail[token]; ok {
			response.FailureCount++
			response.Responses = append(response.Responses, &messaging.SendResponse{Error: err})

			continue
		}
		response.SuccessCount++
		response.Responses = append(response.Responses, &messaging.SendResponse{Success: true, MessageID: "ok"})
	}

	return response, nil
}

func TestFirebaseService_SendBatchNotification_SplitsLargeBatches(t *testing.T) {
	sender := &fakeSender{}
	svc := &firebaseService{client: sender}

	tokens := make([]string, 1201)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("token-%d", i)
	}

	success, failure, invalid, err := svc.SendBatchNotification(context.Background(), tokens, "t", "b", nil)
	require.NoError(t, err)

	assert.Equal(t, 1201, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)
	require.Len(t, sender.batches, 3)
	assert.Len(t, sender.batches[0], 500)
	assert.Len(t, sender.batches[2], 201)
}

func TestFirebaseService_SendBatchNotification_Empty(t *testing.T) {
	sender := &fakeSender{}
	svc := &firebaseService{client: sender}

	success, failure, invalid, err := svc.SendBatchNotification(context.Background(), nil, "t", "b", nil)
	require.NoError(t, err)
	assert.Zero(t, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)
	assert.Empty(t, sender.batches)
}

func TestFirebaseService_SendBatchNotification_CountsFailures(t *testing.T) {
	sender := &fakeSender{fail: map[string]error{"bad": fmt.Errorf("transient")}}
	svc := &firebaseService{client: sender}

	success, failure, invalid, err := svc.SendBatchNotification(context.Background(), []string{"good", "bad"}, "t", "b", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, success)
	assert.Equal(t, 1, failure)
	// Only provider-classified token errors are reported as invalid.
	assert.Empty(t, invalid)
}
