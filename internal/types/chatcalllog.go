package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChatCallLog is an audit row written for every outbound completion call.
type ChatCallLog struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     *uuid.UUID     `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Model      string         `gorm:"column:model;not null" json:"model"`
	Prompt     string         `gorm:"column:prompt" json:"prompt"`
	Response   string         `gorm:"column:response" json:"response"`
	Success    bool           `gorm:"column:success;not null" json:"success"`
	Error      string         `gorm:"column:error" json:"error"`
	Usage      datatypes.JSON `gorm:"column:usage" json:"usage"`
	DurationMs int64          `gorm:"column:duration_ms" json:"duration_ms"`
	CreatedAt  time.Time      `gorm:"not null" json:"created_at"`
}

func (ChatCallLog) TableName() string {
	return "chat_call_log"
}
