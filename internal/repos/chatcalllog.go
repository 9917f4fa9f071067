package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/paclead/paclead-backend/internal/logger"
	"github.com/paclead/paclead-backend/internal/types"
)

type ChatCallLogRepo interface {
	Create(ctx context.Context, tx *gorm.DB, logs []*types.ChatCallLog) ([]*types.ChatCallLog, error)
}

type chatCallLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChatCallLogRepo(db *gorm.DB, baseLog *logger.Logger) ChatCallLogRepo {
	return &chatCallLogRepo{db: db, log: baseLog.With("repo", "ChatCallLogRepo")}
}

func (r *chatCallLogRepo) Create(ctx context.Context, tx *gorm.DB, logs []*types.ChatCallLog) ([]*types.ChatCallLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(logs) == 0 {
		return []*types.ChatCallLog{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
