// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"subsplit/config"
	deliverycontext "subsplit/internal/delivery/context"
	"subsplit/internal/domain/entity"
	domainerrors "subsplit/internal/domain/errors"
	"subsplit/internal/domain/repository"
	"subsplit/internal/domain/service"
	"subsplit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 8

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	sessions          service.SessionRegistry
	maxActiveSessions int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Sessions     service.SessionRegistry
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &userService{
		txManager:         params.TxManager,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		sessions:          params.Sessions,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// issuedSession is the token pair of a freshly started session.
type issuedSession struct {
	id           uuid.UUID
	accessToken  string
	refreshToken string
}

// SignInWithWallet registers the wallet on first sight and updates the
// provided profile fields otherwise. Either way a new session starts.
func (srv *userService) SignInWithWallet(ctx context.Context, input *usecase.WalletSignInInput) (*usecase.AuthOutput, error) {
	wallet, kind := entity.ParseIdentifier(input.WalletAddress)
	if kind != entity.IdentifierWallet {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("invalid wallet address"), "wallet sign-in failed")
	}

	username, email, err := parseProfileFields(input.Username, input.Email)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Starting wallet sign-in", slog.String("wallet", wallet))

	var (
		signedIn *entity.User
		issued   *issuedSession
		isNew    bool
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()
		userRepo := repoFactory.UserRepo()

		authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderWallet, wallet)
		switch {
		case errors.Is(err, repository.ErrAuthNotFound):
			isNew = true
			signedIn, err = srv.createWalletUser(ctx, userRepo, authRepo, wallet, username, email)
		case err != nil:
			return errors.Wrap(err, "failed to find authentication")
		default:
			signedIn, err = srv.updateWalletUser(ctx, userRepo, authRecord.UserID, username, email)
		}
		if err != nil {
			return err
		}

		issued, err = srv.startSession(ctx, repoFactory.RefreshTokenRepo(), signedIn.ID)

		return err
	})

	if err != nil {
		srv.log(ctx).Warn("Wallet sign-in failed", slog.String("wallet", wallet), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute wallet sign-in transaction")
	}
	srv.log(ctx).Info("Wallet signed in", slog.Any("userID", signedIn.ID), slog.Bool("isNewUser", isNew))

	return authOutput(signedIn, issued, isNew), nil
}

func (srv *userService) createWalletUser(
	ctx context.Context,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	wallet string,
	username, email *string,
) (*entity.User, error) {
	if username == nil || email == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("username and email are required for a new account"), "wallet sign-in failed")
	}

	newUser := &entity.User{
		WalletAddress: &wallet,
		Email:         email,
		Username:      *username,
	}
	if err := userRepo.Create(ctx, newUser); err != nil {
		return nil, mapNotFound(err, repository.ErrUserAlreadyExists, domainerrors.ErrUserAlreadyExists, "failed to create user during wallet sign-in")
	}

	newAuth := &entity.Authentication{
		UserID:         newUser.ID,
		Provider:       entity.ProviderWallet,
		ProviderUserID: wallet,
	}
	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return nil, errors.Wrap(err, "failed to create wallet authentication")
	}

	return newUser, nil
}

func (srv *userService) updateWalletUser(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID, username, email *string) (*entity.User, error) {
	existing, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to load wallet user")
	}

	changed := false
	if username != nil && *username != existing.Username {
		existing.Username = *username
		changed = true
	}
	if email != nil && (existing.Email == nil || *existing.Email != *email) {
		existing.Email = email
		changed = true
	}
	if !changed {
		return existing, nil
	}

	if err := userRepo.Update(ctx, existing); err != nil {
		return nil, mapNotFound(err, repository.ErrUserAlreadyExists, domainerrors.ErrUserAlreadyExists, "failed to update wallet user")
	}

	return existing, nil
}

// Register creates an email account and starts its first session.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("username is required"), "registration failed")
	}
	email, kind := entity.ParseIdentifier(input.Email)
	if kind != entity.IdentifierEmail {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("invalid email"), "registration failed")
	}
	if len(input.Password) < minPasswordLength {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("password is too short"), "registration failed")
	}

	// bcrypt is CPU-bound, keep it out of the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var (
		registered *entity.User
		issued     *issuedSession
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()
		userRepo := repoFactory.UserRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderEmail, email)
		switch {
		case err == nil:
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		case !errors.Is(err, repository.ErrAuthNotFound):
			return errors.Wrap(err, "failed to find authentication")
		}

		registered = &entity.User{Email: &email, Username: username}
		if err := userRepo.Create(ctx, registered); err != nil {
			return mapNotFound(err, repository.ErrUserAlreadyExists, domainerrors.ErrUserAlreadyExists, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			UserID:         registered.ID,
			Provider:       entity.ProviderEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		issued, err = srv.startSession(ctx, repoFactory.RefreshTokenRepo(), registered.ID)

		return err
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}
	srv.log(ctx).Info("User registered", slog.Any("userID", registered.ID))

	return authOutput(registered, issued, true), nil
}

// Login orchestrates the email login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email, _ := entity.ParseIdentifier(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	authRecord, err := srv.loadLoginAuth(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	var (
		loggedIn *entity.User
		issued   *issuedSession
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		loggedIn, err = repoFactory.UserRepo().FindByID(ctx, authRecord.UserID)
		if err != nil {
			return mapNotFound(err, repository.ErrUserNotFound, domainerrors.ErrInvalidCredentials, "failed to find user by id")
		}

		issued, err = srv.startSession(ctx, repoFactory.RefreshTokenRepo(), loggedIn.ID)

		return err
	})

	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user login transaction")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedIn.ID))

	return authOutput(loggedIn, issued, false), nil
}

func (srv *userService) loadLoginAuth(ctx context.Context, email string) (*entity.Authentication, error) {
	var authRecord *entity.Authentication

	// Load authentication from primary in a short transaction to avoid stale reads on replicas.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		authRecord, err = repoFactory.AuthRepo().FindAuthentication(ctx, entity.ProviderEmail, email)
		if err != nil {
			return mapNotFound(err, repository.ErrAuthNotFound, domainerrors.ErrInvalidCredentials, "failed to find authentication")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login auth transaction")
	}

	return authRecord, nil
}

// startSession persists a new refresh token and issues the session's token
// pair. The session id doubles as the refresh token row id.
func (srv *userService) startSession(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID) (*issuedSession, error) {
	if srv.maxActiveSessions > 0 {
		active, err := refreshRepo.FindRefreshTokensByUserID(ctx, userID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count active sessions")
		}
		if len(active) >= srv.maxActiveSessions {
			return nil, errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded")
		}
	}

	sessionID, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session id")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(userID, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	record := &entity.RefreshToken{
		ID:        sessionID,
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := refreshRepo.CreateRefreshToken(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &issuedSession{id: sessionID, accessToken: accessToken, refreshToken: refreshToken}, nil
}

// RefreshToken handles the process of issuing a new access token using a refresh token.
// The refresh token remains unchanged.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateToken(input.RefreshToken, service.TokenTypeRefresh)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	var newAccessToken string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stored, err := repoFactory.RefreshTokenRepo().FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
		if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found or expired")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find refresh token")
		}
		if stored.ID != claims.SessionID || stored.UserID != claims.UserID {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token does not match its session")
		}

		newAccessToken, _, err = srv.tokenService.GenerateTokens(stored.UserID, stored.ID)
		if err != nil {
			return errors.Wrap(err, "failed to generate new access token")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to refresh access token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &usecase.RefreshTokenOutput{
		AccessToken: newAccessToken,
	}, nil
}

// Logout ends the session of the given refresh token and cancels any work
// still running under it. Unknown tokens succeed.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	var sessionID uuid.UUID

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		stored, err := refreshRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
		if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find refresh token")
		}

		if err := refreshRepo.DeleteRefreshToken(ctx, stored.ID); err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return errors.Wrap(err, "failed to delete refresh token")
		}
		sessionID = stored.ID

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to log out", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute logout transaction")
	}

	if sessionID != uuid.Nil && srv.sessions != nil {
		srv.sessions.Revoke(sessionID, service.RevokeReasonLogout)
	}
	srv.log(ctx).Info("Successfully logged out", slog.Any("sessionID", sessionID))

	return nil
}

// parseProfileFields normalises optional username and email inputs. Blank
// values count as absent.
func parseProfileFields(username, email *string) (*string, *string, error) {
	var parsedUsername, parsedEmail *string

	if username != nil {
		if trimmed := strings.TrimSpace(*username); trimmed != "" {
			parsedUsername = &trimmed
		}
	}

	if email != nil && strings.TrimSpace(*email) != "" {
		value, kind := entity.ParseIdentifier(*email)
		if kind != entity.IdentifierEmail {
			return nil, nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("invalid email"), "invalid profile")
		}
		parsedEmail = &value
	}

	return parsedUsername, parsedEmail, nil
}

func authOutput(user *entity.User, issued *issuedSession, isNew bool) *usecase.AuthOutput {
	return &usecase.AuthOutput{
		AccessToken:  issued.accessToken,
		RefreshToken: issued.refreshToken,
		SessionID:    issued.id.String(),
		User:         user,
		IsNewUser:    isNew,
	}
}
