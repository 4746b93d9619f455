package handler

import (
	"log/slog"
	"net/http"

	"subsplit/internal/delivery/http/response"
	"subsplit/internal/domain/entity"
	"subsplit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler records share payments and payment reminders.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// CreatePaymentRequest records a payment from the caller to receiverId.
type CreatePaymentRequest struct {
	SubscriptionID  uuid.UUID       `json:"subscriptionId" validate:"required"`
	ReceiverID      uuid.UUID       `json:"receiverId" validate:"required"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency,omitempty" validate:"omitempty,len=3"`
	TransactionHash *string         `json:"transactionHash,omitempty"`
}

// UpdatePaymentStatusRequest moves a payment out of pending.
type UpdatePaymentStatusRequest struct {
	Status          entity.PaymentStatus `json:"status" validate:"required,oneof=pending completed failed"`
	TransactionHash *string              `json:"transactionHash,omitempty"`
}

// ReminderRequest names the member to remind.
type ReminderRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

// Create handles POST /payments.
func (h *PaymentHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreatePaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	payment, err := h.paymentUC.Create(c.Request().Context(), &usecase.CreatePaymentInput{
		SubscriptionID:  req.SubscriptionID,
		SenderID:        userID,
		ReceiverID:      req.ReceiverID,
		Amount:          req.Amount,
		Currency:        req.Currency,
		TransactionHash: req.TransactionHash,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, payment, "Payment recorded")
}

// UpdateStatus handles PATCH /payments/:id/status.
func (h *PaymentHandler) UpdateStatus(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	paymentID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdatePaymentStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	payment, err := h.paymentUC.UpdateStatus(c.Request().Context(), paymentID, userID, req.Status, req.TransactionHash)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payment, "Payment status updated")
}

// History handles GET /payments.
func (h *PaymentHandler) History(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	payments, err := h.paymentUC.History(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payments, "Payment history retrieved successfully")
}

// SendReminder handles POST /subscriptions/:id/reminders.
func (h *PaymentHandler) SendReminder(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	subscriptionID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req ReminderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.paymentUC.SendReminder(c.Request().Context(), subscriptionID, userID, req.UserID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Reminder sent")
}
