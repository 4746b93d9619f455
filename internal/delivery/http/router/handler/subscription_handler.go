package handler

import (
	"log/slog"
	"net/http"
	"time"

	"subsplit/internal/delivery/http/response"
	"subsplit/internal/domain/entity"
	"subsplit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for subscription-related handlers
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// CreateSubscriptionRequest represents the request body for creating a subscription
type CreateSubscriptionRequest struct {
	Name         string              `json:"name" validate:"required,max=100"`
	Cost         decimal.Decimal     `json:"cost"`
	BillingCycle entity.BillingCycle `json:"billingCycle,omitempty" validate:"omitempty,oneof=weekly monthly quarterly yearly"`
	DueDate      time.Time           `json:"dueDate"`
	LogoURL      *string             `json:"logoUrl,omitempty" validate:"omitempty,url"`
}

// UpdateSubscriptionRequest represents the request body for updating a subscription.
// Omitted fields are kept.
type UpdateSubscriptionRequest struct {
	Name         *string              `json:"name,omitempty" validate:"omitempty,max=100"`
	Cost         *decimal.Decimal     `json:"cost,omitempty"`
	BillingCycle *entity.BillingCycle `json:"billingCycle,omitempty" validate:"omitempty,oneof=weekly monthly quarterly yearly"`
	DueDate      *time.Time           `json:"dueDate,omitempty"`
	LogoURL      *string              `json:"logoUrl,omitempty"`
}

// Create handles POST /subscriptions.
func (h *SubscriptionHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateSubscriptionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	subscription, err := h.subscriptionUC.Create(c.Request().Context(), &usecase.CreateSubscriptionInput{
		OwnerID:      userID,
		Name:         req.Name,
		Cost:         req.Cost,
		BillingCycle: req.BillingCycle,
		DueDate:      req.DueDate,
		LogoURL:      req.LogoURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subscription, "Subscription created successfully")
}

// List handles GET /subscriptions.
func (h *SubscriptionHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	subscriptions, err := h.subscriptionUC.ListUserSubscriptions(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscriptions, "User subscriptions retrieved successfully")
}

// Get handles GET /subscriptions/:id.
func (h *SubscriptionHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	subscriptionID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	subscription, err := h.subscriptionUC.Get(c.Request().Context(), subscriptionID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscription, "Subscription retrieved successfully")
}

// Update handles PATCH /subscriptions/:id.
func (h *SubscriptionHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	subscriptionID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateSubscriptionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	subscription, err := h.subscriptionUC.Update(c.Request().Context(), &usecase.UpdateSubscriptionInput{
		SubscriptionID: subscriptionID,
		ActorID:        userID,
		Name:           req.Name,
		Cost:           req.Cost,
		BillingCycle:   req.BillingCycle,
		DueDate:        req.DueDate,
		LogoURL:        req.LogoURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscription, "Subscription updated successfully")
}

// Delete handles DELETE /subscriptions/:id.
func (h *SubscriptionHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	subscriptionID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.subscriptionUC.Delete(c.Request().Context(), subscriptionID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Subscription deleted successfully")
}

// GetMembers handles GET /subscriptions/:id/members.
func (h *SubscriptionHandler) GetMembers(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	subscriptionID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	members, err := h.subscriptionUC.GetMembers(c.Request().Context(), subscriptionID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, members, "Members retrieved successfully")
}

// RecalculateShares handles POST /subscriptions/:id/recalculate.
func (h *SubscriptionHandler) RecalculateShares(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	subscriptionID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	members, err := h.subscriptionUC.RecalculateShares(c.Request().Context(), subscriptionID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, members, "Shares recalculated")
}

// Leave handles POST /subscriptions/:id/leave.
func (h *SubscriptionHandler) Leave(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	subscriptionID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.subscriptionUC.Leave(c.Request().Context(), subscriptionID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Left subscription")
}

// RemoveMember handles DELETE /subscriptions/:id/members/:userId.
func (h *SubscriptionHandler) RemoveMember(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	subscriptionID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	memberUserID, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}

	if err := h.subscriptionUC.RemoveMember(c.Request().Context(), subscriptionID, memberUserID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Member removed")
}
