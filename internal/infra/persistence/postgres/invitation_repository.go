package postgres

import (
	"context"

	"subsplit/internal/domain/entity"
	domainerrors "subsplit/internal/domain/errors"
	"subsplit/internal/domain/repository"
	"subsplit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// invitationRepository implements the repository.InvitationRepository interface.
type invitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository is the constructor for invitationRepository.
func NewInvitationRepository(db *gorm.DB) repository.InvitationRepository {
	return &invitationRepository{
		db: db,
	}
}

// Create persists a pending invitation. A second pending invitation for the
// same invitee and subscription yields ErrInvitationExists.
func (repo *invitationRepository) Create(ctx context.Context, invitation *entity.Invitation) error {
	invitationM := fromInvitationDomain(invitation)

	if err := repo.db.WithContext(ctx).Omit("Subscription", "Inviter").Create(invitationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrInvitationExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSubscriptionNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create invitation")
	}

	invitation.ID = invitationM.ID
	invitation.Status = entity.InvitationStatus(invitationM.Status)
	invitation.CreatedAt = invitationM.CreatedAt
	invitation.UpdatedAt = invitationM.UpdatedAt

	return nil
}

// FindByID retrieves an invitation with its subscription and inviter attached.
func (repo *invitationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invitation, error) {
	var invitationM model.InvitationModel

	if err := repo.db.WithContext(ctx).
		Preload("Subscription").
		Preload("Inviter").
		Where("id = ?", id).
		First(&invitationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvitationNotFound
		}

		return nil, errors.Wrap(err, "failed to find invitation by ID")
	}

	return toInvitationDomain(&invitationM), nil
}

// FindPending retrieves the pending invitation of inviteeID to a subscription.
func (repo *invitationRepository) FindPending(ctx context.Context, subscriptionID, inviteeID uuid.UUID) (*entity.Invitation, error) {
	var invitationM model.InvitationModel

	if err := repo.db.WithContext(ctx).
		Where("subscription_id = ? AND invitee_id = ? AND status = ?",
			subscriptionID, inviteeID, string(entity.InvitationPending)).
		First(&invitationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvitationNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending invitation")
	}

	return toInvitationDomain(&invitationM), nil
}

// FindPendingByInvitee lists the pending invitations addressed to inviteeID, newest first.
func (repo *invitationRepository) FindPendingByInvitee(ctx context.Context, inviteeID uuid.UUID) ([]*entity.Invitation, error) {
	var invitationModels []*model.InvitationModel

	if err := repo.db.WithContext(ctx).
		Preload("Subscription").
		Preload("Inviter").
		Where("invitee_id = ? AND status = ?", inviteeID, string(entity.InvitationPending)).
		Order("created_at DESC").
		Find(&invitationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending invitations")
	}

	invitations := make([]*entity.Invitation, 0, len(invitationModels))
	for _, invitationM := range invitationModels {
		invitations = append(invitations, toInvitationDomain(invitationM))
	}

	return invitations, nil
}

// UpdateStatus moves a pending invitation to status.
func (repo *invitationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InvitationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InvitationModel{}).
		Where("id = ? AND status = ?", id, string(entity.InvitationPending)).
		Update("status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update invitation status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInvitationNotFound
	}

	return nil
}

// RevokePending revokes pending invitations of a subscription, narrowed to
// one invitee when inviteeID is set.
func (repo *invitationRepository) RevokePending(ctx context.Context, subscriptionID uuid.UUID, inviteeID *uuid.UUID) ([]*entity.Invitation, error) {
	query := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("subscription_id = ? AND status = ?", subscriptionID, string(entity.InvitationPending))
	if inviteeID != nil {
		query = query.Where("invitee_id = ?", *inviteeID)
	}

	var revoked []*model.InvitationModel
	if err := query.Find(&revoked).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load pending invitations")
	}

	if len(revoked) == 0 {
		return []*entity.Invitation{}, nil
	}

	ids := make([]uuid.UUID, 0, len(revoked))
	for _, invitationM := range revoked {
		ids = append(ids, invitationM.ID)
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.InvitationModel{}).
		Where("id IN ?", ids).
		Update("status", string(entity.InvitationRevoked)).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to revoke invitations")
	}

	invitations := make([]*entity.Invitation, 0, len(revoked))
	for _, invitationM := range revoked {
		invitationM.Status = string(entity.InvitationRevoked)
		invitations = append(invitations, toInvitationDomain(invitationM))
	}

	return invitations, nil
}

// --- Mapper Functions ---

func toInvitationDomain(data *model.InvitationModel) *entity.Invitation {
	if data == nil {
		return nil
	}

	return &entity.Invitation{
		ID:             data.ID,
		SubscriptionID: data.SubscriptionID,
		InviterID:      data.InviterID,
		InviteeID:      data.InviteeID,
		Status:         entity.InvitationStatus(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		Subscription:   toSubscriptionDomain(data.Subscription),
		Inviter:        toUserDomain(data.Inviter),
	}
}

func fromInvitationDomain(data *entity.Invitation) *model.InvitationModel {
	if data == nil {
		return nil
	}

	status := data.Status
	if status == "" {
		status = entity.InvitationPending
	}

	return &model.InvitationModel{
		ID:             data.ID,
		SubscriptionID: data.SubscriptionID,
		InviterID:      data.InviterID,
		InviteeID:      data.InviteeID,
		Status:         string(status),
	}
}
