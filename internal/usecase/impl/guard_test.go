package impl

import (
	"context"
	"testing"

	domainerrors "subsplit/internal/domain/errors"
	"subsplit/internal/domain/service"
	mockSvc "subsplit/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCheckActor(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()

	tests := []struct {
		name    string
		current uuid.UUID
		err     error
		want    error
	}{
		{name: "bound to the actor", current: actor},
		{name: "unbound context", err: service.ErrNoIdentity},
		{name: "revoked session", err: service.ErrIdentityRevoked, want: domainerrors.ErrSessionRevoked},
		{name: "someone else", current: uuid.New(), want: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity := mockSvc.NewMockIdentityProvider(t)
			identity.EXPECT().CurrentUserID(ctx).Return(tt.current, tt.err)

			err := checkActor(ctx, identity, actor)

			if tt.want == nil {
				assert.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	t.Run("no provider", func(t *testing.T) {
		assert.NoError(t, checkActor(ctx, nil, actor))
	})
}
