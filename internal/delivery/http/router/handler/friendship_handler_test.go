package handler

import (
	"net/http"
	"testing"

	"subsplit/internal/domain/entity"
	domainerrors "subsplit/internal/domain/errors"
	mockusecase "subsplit/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newFriendshipHandler(t *testing.T) (*FriendshipHandler, *mockusecase.MockFriendshipUsecase) {
	uc := mockusecase.NewMockFriendshipUsecase(t)

	return NewFriendshipHandler(FriendshipHandlerParams{FriendshipUC: uc, Logger: newDiscardLogger()}), uc
}

func TestFriendshipHandler_SendRequest(t *testing.T) {
	h, uc := newFriendshipHandler(t)
	userID, friendID := uuid.New(), uuid.New()

	uc.EXPECT().SendRequest(mock.Anything, userID, "0xAbC").
		Return(&entity.Friendship{ID: uuid.New(), UserID: userID, FriendID: friendID, Status: entity.FriendshipPending}, nil)

	rec := serve(t, route{http.MethodPost, "/friends/requests", h.SendRequest}, "/friends/requests", `{"identifier":"0xAbC"}`, userID)

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, http.StatusCreated, env.Code)
	got := decodeData[entity.Friendship](t, rec)
	assert.Equal(t, friendID, got.FriendID)
}

func TestFriendshipHandler_SendRequest_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		userID     uuid.UUID
		setup      func(uc *mockusecase.MockFriendshipUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unauthenticated",
			body:       `{"identifier":"bob@example.com"}`,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:       "missing identifier",
			body:       `{}`,
			userID:     uuid.New(),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "malformed body",
			body:       `{"identifier":`,
			userID:     uuid.New(),
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:   "pending request",
			body:   `{"identifier":"bob@example.com"}`,
			userID: uuid.New(),
			setup: func(uc *mockusecase.MockFriendshipUsecase) {
				uc.EXPECT().SendRequest(mock.Anything, mock.Anything, "bob@example.com").
					Return(nil, errors.Wrap(domainerrors.ErrAlreadyPending, "friend request already pending"))
			},
			wantStatus: http.StatusConflict,
			wantCode:   "ALREADY_PENDING",
		},
		{
			name:   "store failure",
			body:   `{"identifier":"bob@example.com"}`,
			userID: uuid.New(),
			setup: func(uc *mockusecase.MockFriendshipUsecase) {
				uc.EXPECT().SendRequest(mock.Anything, mock.Anything, "bob@example.com").
					Return(nil, errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newFriendshipHandler(t)
			if tt.setup != nil {
				tt.setup(uc)
			}

			rec := serve(t, route{http.MethodPost, "/friends/requests", h.SendRequest}, "/friends/requests", tt.body, tt.userID)

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decode(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestFriendshipHandler_Respond(t *testing.T) {
	h, uc := newFriendshipHandler(t)
	userID, requestID := uuid.New(), uuid.New()

	uc.EXPECT().Respond(mock.Anything, requestID, userID, false).
		Return(&entity.Friendship{ID: requestID, Status: entity.FriendshipRejected}, nil)

	rec := serve(t, route{http.MethodPost, "/friends/requests/:id/respond", h.Respond},
		"/friends/requests/"+requestID.String()+"/respond", `{"accept":false}`, userID)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Friend request rejected", decode(t, rec).Message)
}

func TestFriendshipHandler_Respond_RequiresAnswer(t *testing.T) {
	h, _ := newFriendshipHandler(t)

	rec := serve(t, route{http.MethodPost, "/friends/requests/:id/respond", h.Respond},
		"/friends/requests/"+uuid.NewString()+"/respond", `{}`, uuid.New())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestFriendshipHandler_Remove_InvalidID(t *testing.T) {
	h, _ := newFriendshipHandler(t)

	rec := serve(t, route{http.MethodDelete, "/friends/:id", h.Remove}, "/friends/not-a-uuid", "", uuid.New())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decode(t, rec).Error.Code)
}

func TestFriendshipHandler_ListFriends(t *testing.T) {
	h, uc := newFriendshipHandler(t)
	userID := uuid.New()

	uc.EXPECT().ListFriends(mock.Anything, userID).
		Return([]*entity.User{{ID: uuid.New(), Username: "alice"}, {ID: uuid.New(), Username: "bob"}}, nil)

	rec := serve(t, route{http.MethodGet, "/friends", h.ListFriends}, "/friends", "", userID)

	assert.Equal(t, http.StatusOK, rec.Code)
	friends := decodeData[[]entity.User](t, rec)
	assert.Len(t, friends, 2)
	assert.Equal(t, "alice", friends[0].Username)
}
