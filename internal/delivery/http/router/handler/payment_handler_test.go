package handler

import (
	"fmt"
	"net/http"
	"testing"

	"subsplit/internal/domain/entity"
	domainerrors "subsplit/internal/domain/errors"
	mockusecase "subsplit/internal/mocks/usecase"
	"subsplit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPaymentHandler(t *testing.T) (*PaymentHandler, *mockusecase.MockPaymentUsecase) {
	uc := mockusecase.NewMockPaymentUsecase(t)

	return NewPaymentHandler(PaymentHandlerParams{PaymentUC: uc, Logger: newDiscardLogger()}), uc
}

func TestPaymentHandler_Create(t *testing.T) {
	h, uc := newPaymentHandler(t)
	senderID, receiverID, subID := uuid.New(), uuid.New(), uuid.New()

	uc.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in *usecase.CreatePaymentInput) bool {
		return in.SenderID == senderID && in.ReceiverID == receiverID && in.SubscriptionID == subID &&
			in.Amount.Equal(decimal.RequireFromString("4.25")) && in.Currency == "EUR" && in.TransactionHash == nil
	})).Return(&entity.Payment{ID: uuid.New(), Status: entity.PaymentPending}, nil)

	body := fmt.Sprintf(`{"subscriptionId":%q,"receiverId":%q,"amount":"4.25","currency":"EUR"}`, subID, receiverID)
	rec := serve(t, route{http.MethodPost, "/payments", h.Create}, "/payments", body, senderID)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, entity.PaymentPending, decodeData[entity.Payment](t, rec).Status)
}

func TestPaymentHandler_UpdateStatus(t *testing.T) {
	paymentID := uuid.New()
	target := "/payments/" + paymentID.String() + "/status"

	t.Run("unknown status is rejected", func(t *testing.T) {
		h, _ := newPaymentHandler(t)

		rec := serve(t, route{http.MethodPatch, "/payments/:id/status", h.UpdateStatus}, target, `{"status":"refunded"}`, uuid.New())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec).Error.Details, "status")
	})

	t.Run("only the receiver may confirm", func(t *testing.T) {
		h, uc := newPaymentHandler(t)
		actorID := uuid.New()
		uc.EXPECT().UpdateStatus(mock.Anything, paymentID, actorID, entity.PaymentCompleted, (*string)(nil)).
			Return(nil, errors.Wrap(domainerrors.ErrForbidden, "sender cannot confirm"))

		rec := serve(t, route{http.MethodPatch, "/payments/:id/status", h.UpdateStatus}, target, `{"status":"completed"}`, actorID)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("completed with hash", func(t *testing.T) {
		h, uc := newPaymentHandler(t)
		actorID := uuid.New()
		hash := "0xfeed"
		uc.EXPECT().UpdateStatus(mock.Anything, paymentID, actorID, entity.PaymentCompleted, &hash).
			Return(&entity.Payment{ID: paymentID, Status: entity.PaymentCompleted, TransactionHash: &hash}, nil)

		rec := serve(t, route{http.MethodPatch, "/payments/:id/status", h.UpdateStatus}, target,
			`{"status":"completed","transactionHash":"0xfeed"}`, actorID)

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeData[entity.Payment](t, rec)
		require.NotNil(t, got.TransactionHash)
		assert.Equal(t, hash, *got.TransactionHash)
	})
}

func TestPaymentHandler_SendReminder(t *testing.T) {
	h, uc := newPaymentHandler(t)
	ownerID, subID, memberID := uuid.New(), uuid.New(), uuid.New()

	uc.EXPECT().SendReminder(mock.Anything, subID, ownerID, memberID).Return(nil)

	rec := serve(t, route{http.MethodPost, "/subscriptions/:id/reminders", h.SendReminder},
		"/subscriptions/"+subID.String()+"/reminders", fmt.Sprintf(`{"userId":%q}`, memberID), ownerID)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}
