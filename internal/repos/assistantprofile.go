package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/paclead/paclead-backend/internal/logger"
	"github.com/paclead/paclead-backend/internal/types"
)

type AssistantProfileRepo interface {
	// GetByUserID returns (nil, nil) when the tenant has no profile yet.
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.AssistantProfile, error)
	Upsert(ctx context.Context, tx *gorm.DB, profile *types.AssistantProfile) (*types.AssistantProfile, error)
}

type assistantProfileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssistantProfileRepo(db *gorm.DB, baseLog *logger.Logger) AssistantProfileRepo {
	return &assistantProfileRepo{db: db, log: baseLog.With("repo", "AssistantProfileRepo")}
}

func (r *assistantProfileRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.AssistantProfile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.AssistantProfile
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (r *assistantProfileRepo) Upsert(ctx context.Context, tx *gorm.DB, profile *types.AssistantProfile) (*types.AssistantProfile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "personality", "tone", "sales_approach", "greeting_message", "language", "updated_at",
			}),
		}).
		Create(profile).Error; err != nil {
		return nil, err
	}
	return r.GetByUserID(ctx, transaction, profile.UserID)
}
