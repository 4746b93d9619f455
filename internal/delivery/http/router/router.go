// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"subsplit/internal/delivery/http/middleware"
	"subsplit/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ProfileHandler      *handler.ProfileHandler
	FriendshipHandler   *handler.FriendshipHandler
	SubscriptionHandler *handler.SubscriptionHandler
	InvitationHandler   *handler.InvitationHandler
	NotificationHandler *handler.NotificationHandler
	PaymentHandler      *handler.PaymentHandler
	DeviceHandler       *handler.DeviceHandler
	EventHandler        *handler.EventHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/wallet", p.AuthHandler.SignInWithWallet)
		authGroup.POST("/register", p.AuthHandler.Register)
		authGroup.POST("/login", p.AuthHandler.Login)
		authGroup.POST("/refresh", p.AuthHandler.RefreshToken)
		authGroup.POST("/logout", p.AuthHandler.Logout)
	}

	// Everything below requires a live session.
	api := e.Group("", p.AuthMiddleware.Authenticate)

	me := api.Group("/me")
	{
		me.GET("", p.ProfileHandler.GetProfile)
		me.PATCH("", p.ProfileHandler.UpdateProfile)
		me.GET("/qrcode", p.ProfileHandler.FriendQRCode)
		me.GET("/sessions", p.ProfileHandler.ListSessions)
		me.DELETE("/sessions", p.ProfileHandler.RevokeAllSessions)
		me.DELETE("/sessions/:id", p.ProfileHandler.RevokeSession)
	}

	friends := api.Group("/friends")
	{
		friends.GET("", p.FriendshipHandler.ListFriends)
		friends.POST("/requests", p.FriendshipHandler.SendRequest)
		friends.GET("/requests", p.FriendshipHandler.ListPending)
		friends.GET("/requests/sent", p.FriendshipHandler.ListSent)
		friends.POST("/requests/:id/respond", p.FriendshipHandler.Respond)
		friends.POST("/qrcode", p.FriendshipHandler.SendRequestFromQR)
		friends.DELETE("/:id", p.FriendshipHandler.Remove)
	}

	subscriptions := api.Group("/subscriptions")
	{
		subscriptions.POST("", p.SubscriptionHandler.Create)
		subscriptions.GET("", p.SubscriptionHandler.List)
		subscriptions.GET("/:id", p.SubscriptionHandler.Get)
		subscriptions.PATCH("/:id", p.SubscriptionHandler.Update)
		subscriptions.DELETE("/:id", p.SubscriptionHandler.Delete)
		subscriptions.GET("/:id/members", p.SubscriptionHandler.GetMembers)
		subscriptions.POST("/:id/recalculate", p.SubscriptionHandler.RecalculateShares)
		subscriptions.POST("/:id/leave", p.SubscriptionHandler.Leave)
		subscriptions.DELETE("/:id/members/:userId", p.SubscriptionHandler.RemoveMember)
		subscriptions.POST("/:id/invitations", p.InvitationHandler.Invite)
		subscriptions.POST("/:id/reminders", p.PaymentHandler.SendReminder)
	}

	invitations := api.Group("/invitations")
	{
		invitations.GET("", p.InvitationHandler.List)
		invitations.POST("/:notificationId/accept", p.InvitationHandler.Accept)
		invitations.POST("/:notificationId/decline", p.InvitationHandler.Decline)
	}

	notifications := api.Group("/notifications")
	{
		notifications.GET("", p.NotificationHandler.List)
		notifications.GET("/unread-count", p.NotificationHandler.UnreadCount)
		notifications.POST("/read-all", p.NotificationHandler.MarkAllRead)
		notifications.POST("/:id/read", p.NotificationHandler.MarkRead)
		notifications.DELETE("", p.NotificationHandler.ClearAll)
		notifications.DELETE("/:id", p.NotificationHandler.Delete)
	}

	payments := api.Group("/payments")
	{
		payments.POST("", p.PaymentHandler.Create)
		payments.GET("", p.PaymentHandler.History)
		payments.PATCH("/:id/status", p.PaymentHandler.UpdateStatus)
	}

	devices := api.Group("/devices")
	{
		devices.POST("", p.DeviceHandler.RegisterDevice)
		devices.GET("", p.DeviceHandler.GetUserDevices)
		devices.PUT("/:id/token", p.DeviceHandler.UpdateFCMToken)
		devices.DELETE("/:id", p.DeviceHandler.DeactivateDevice)
	}

	api.GET("/events", p.EventHandler.Stream)
}
