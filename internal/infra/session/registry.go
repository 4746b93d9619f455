// Package session tracks live sign-in sessions and ties request contexts to them.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"subsplit/config"
	"subsplit/internal/domain/repository"
	"subsplit/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	ReasonLogout  = service.RevokeReasonLogout
	ReasonRevoked = service.RevokeReasonRevoked
	ReasonExpired = service.RevokeReasonExpired
)

type identityKey struct{}

// binding is the identity attached to one request context.
type binding struct {
	sessionID uuid.UUID
	userID    uuid.UUID
	ctx       context.Context
	cancel    context.CancelCauseFunc
}

// Registry implements service.SessionRegistry. Bound contexts are cancelled
// with service.ErrIdentityRevoked when their session ends.
type Registry struct {
	mu        sync.Mutex
	bindings  map[uuid.UUID]map[*binding]struct{}
	revoked   map[uuid.UUID]time.Time
	listeners map[*changeListener]struct{}

	logger *slog.Logger
}

type changeListener struct {
	registry *Registry
	fn       func(service.IdentityChange)
	once     sync.Once
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		bindings:  make(map[uuid.UUID]map[*binding]struct{}),
		revoked:   make(map[uuid.UUID]time.Time),
		listeners: make(map[*changeListener]struct{}),
		logger:    logger,
	}
}

// Bind derives a context tied to sessionID. The context is cancelled when the
// session is revoked or release is called.
func (r *Registry) Bind(ctx context.Context, sessionID, userID uuid.UUID) (context.Context, func()) {
	bctx, cancel := context.WithCancelCause(ctx)
	b := &binding{sessionID: sessionID, userID: userID, cancel: cancel}
	bctx = context.WithValue(bctx, identityKey{}, b)
	b.ctx = bctx

	r.mu.Lock()
	if _, dead := r.revoked[sessionID]; dead {
		r.mu.Unlock()
		cancel(service.ErrIdentityRevoked)

		return bctx, func() {}
	}
	set, ok := r.bindings[sessionID]
	if !ok {
		set = make(map[*binding]struct{})
		r.bindings[sessionID] = set
	}
	set[b] = struct{}{}
	r.mu.Unlock()

	release := func() {
		r.mu.Lock()
		if set, ok := r.bindings[sessionID]; ok {
			delete(set, b)
			if len(set) == 0 {
				delete(r.bindings, sessionID)
			}
		}
		r.mu.Unlock()
		cancel(context.Canceled)
	}

	return bctx, release
}

// CurrentUserID returns the user bound to ctx. It fails with ErrNoIdentity for
// an unbound context and ErrIdentityRevoked once the session ended.
func (r *Registry) CurrentUserID(ctx context.Context) (uuid.UUID, error) {
	b, ok := ctx.Value(identityKey{}).(*binding)
	if !ok {
		return uuid.Nil, service.ErrNoIdentity
	}

	if errors.Is(context.Cause(b.ctx), service.ErrIdentityRevoked) {
		return uuid.Nil, service.ErrIdentityRevoked
	}

	r.mu.Lock()
	_, dead := r.revoked[b.sessionID]
	r.mu.Unlock()
	if dead {
		return uuid.Nil, service.ErrIdentityRevoked
	}

	return b.userID, nil
}

// SessionIDFromContext returns the session bound to ctx.
func SessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	b, ok := ctx.Value(identityKey{}).(*binding)
	if !ok {
		return uuid.Nil, false
	}

	return b.sessionID, true
}

// OnIdentityChange registers fn for every revoked session.
func (r *Registry) OnIdentityChange(fn func(service.IdentityChange)) service.Registration {
	l := &changeListener{registry: r, fn: fn}

	r.mu.Lock()
	r.listeners[l] = struct{}{}
	r.mu.Unlock()

	return l
}

// Close unregisters the listener.
func (l *changeListener) Close() {
	l.once.Do(func() {
		l.registry.mu.Lock()
		delete(l.registry.listeners, l)
		l.registry.mu.Unlock()
	})
}

// Revoke ends one session.
func (r *Registry) Revoke(sessionID uuid.UUID, reason string) {
	r.revoke(sessionID, uuid.Nil, reason)
}

// RevokeUser ends every bound session of userID.
func (r *Registry) RevokeUser(userID uuid.UUID, reason string) {
	r.mu.Lock()
	var sessions []uuid.UUID
	for sessionID, set := range r.bindings {
		for b := range set {
			if b.userID == userID {
				sessions = append(sessions, sessionID)

				break
			}
		}
	}
	r.mu.Unlock()

	for _, sessionID := range sessions {
		r.revoke(sessionID, userID, reason)
	}
}

func (r *Registry) revoke(sessionID, userID uuid.UUID, reason string) {
	r.mu.Lock()
	r.revoked[sessionID] = time.Now()
	set := r.bindings[sessionID]
	delete(r.bindings, sessionID)

	for b := range set {
		if userID == uuid.Nil {
			userID = b.userID
		}
	}

	listeners := make([]*changeListener, 0, len(r.listeners))
	for l := range r.listeners {
		listeners = append(listeners, l)
	}
	r.mu.Unlock()

	for b := range set {
		b.cancel(service.ErrIdentityRevoked)
	}

	change := service.IdentityChange{SessionID: sessionID, UserID: userID, Reason: reason}
	for _, l := range listeners {
		l.fn(change)
	}

	r.logger.Info("Session revoked",
		slog.String("session_id", sessionID.String()),
		slog.String("reason", reason),
		slog.Int("cancelled_requests", len(set)),
	)
}

// forget drops revocation markers older than cutoff. Tokens of those sessions
// have expired by then, so they can no longer authenticate.
func (r *Registry) forget(cutoff time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for sessionID, at := range r.revoked {
		if at.Before(cutoff) {
			delete(r.revoked, sessionID)
		}
	}
}

// SweeperParams holds dependencies for the expiry sweeper, injected by Fx
type SweeperParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	Registry  *Registry
	TxManager repository.TransactionManager
}

// RegisterSweeper periodically deletes expired sessions and revokes them.
func RegisterSweeper(params SweeperParams) {
	interval := time.Minute
	accessTTL := 15 * time.Minute
	if params.Config.Auth != nil {
		if params.Config.Auth.SessionSweepInterval > 0 {
			interval = params.Config.Auth.SessionSweepInterval
		}
		if params.Config.Auth.AccessTokenTTL > 0 {
			accessTTL = params.Config.Auth.AccessTokenTTL
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)

				ticker := time.NewTicker(interval)
				defer ticker.Stop()

				for {
					select {
					case <-ctx.Done():
						return
					case now := <-ticker.C:
						sweep(ctx, params, now)
						params.Registry.forget(now.Add(-accessTTL))
					}
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			<-done

			return nil
		},
	})
}

func sweep(ctx context.Context, params SweeperParams, now time.Time) {
	var expired []uuid.UUID
	err := params.TxManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		expired, err = repoFactory.RefreshTokenRepo().DeleteExpiredRefreshTokens(ctx, now)

		return err
	})
	if err != nil {
		params.Logger.Error("Failed to sweep expired sessions", slog.Any("error", err))

		return
	}

	for _, sessionID := range expired {
		params.Registry.Revoke(sessionID, ReasonExpired)
	}
}

func asSessionRegistry(r *Registry) service.SessionRegistry {
	return r
}

func asIdentityProvider(r *Registry) service.IdentityProvider {
	return r
}

// Module provides the session registry and its sweeper.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		asSessionRegistry,
		asIdentityProvider,
	),
	fx.Invoke(RegisterSweeper),
)
