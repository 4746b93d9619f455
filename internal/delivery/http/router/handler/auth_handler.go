package handler

import (
	"log/slog"
	"net/http"

	"subsplit/internal/delivery/http/response"
	"subsplit/internal/domain/entity"
	"subsplit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// AuthHandler signs users in and out.
type AuthHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// WalletSignInRequest signs in with a wallet address.
type WalletSignInRequest struct {
	WalletAddress string  `json:"walletAddress" validate:"required"`
	Username      *string `json:"username,omitempty" validate:"omitempty,max=64"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
}

// RegisterRequest creates an email account.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest signs in with email and password.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest carries a session's refresh token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// AuthResponse is returned by every sign-in route.
type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	SessionID    string       `json:"sessionId"`
	User         *entity.User `json:"user"`
	IsNewUser    bool         `json:"isNewUser"`
}

func newAuthResponse(output *usecase.AuthOutput) *AuthResponse {
	return &AuthResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		SessionID:    output.SessionID,
		User:         output.User,
		IsNewUser:    output.IsNewUser,
	}
}

// SignInWithWallet handles POST /auth/wallet.
func (h *AuthHandler) SignInWithWallet(c echo.Context) error {
	var req WalletSignInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.SignInWithWallet(c.Request().Context(), &usecase.WalletSignInInput{
		WalletAddress: req.WalletAddress,
		Username:      req.Username,
		Email:         req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if output.IsNewUser {
		status = http.StatusCreated
	}

	return response.Success(c, status, newAuthResponse(output), "Signed in with wallet")
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newAuthResponse(output), "User registered successfully")
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(output), "Login successful")
}

// RefreshToken handles POST /auth/refresh.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"accessToken": output.AccessToken}, "Token refreshed successfully")
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.userUC.Logout(c.Request().Context(), &usecase.LogoutInput{RefreshToken: req.RefreshToken}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}
