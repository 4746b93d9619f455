// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"subsplit/internal/domain/entity"
)

// --- Input DTOs ---

// WalletSignInInput signs in with a wallet address. Username and Email are
// required the first time the wallet is seen and update the profile after.
type WalletSignInInput struct {
	WalletAddress string
	Username      *string
	Email         *string
}

// RegisterInput defines the data required to register an email account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token of a session.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token of the session to end.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// AuthOutput returns the generated tokens after a successful sign-in.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
	User         *entity.User
	IsNewUser    bool
}

// RefreshTokenOutput returns the new access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// UserUsecase defines the interface for sign-in and session start/stop.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// SignInWithWallet creates the user behind a wallet on first sight and
	// updates the provided profile fields otherwise.
	SignInWithWallet(ctx context.Context, input *WalletSignInInput) (*AuthOutput, error)
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
}
