package types

import (
	"time"

	"github.com/google/uuid"
)

// AssistantProfile configures the persona the chat pipeline speaks with.
// At most one row per tenant; a missing row is valid and replaced by the
// documented default at prompt-build time.
type AssistantProfile struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User            *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Name            string    `gorm:"not null;column:name" json:"name"`
	Personality     string    `gorm:"column:personality" json:"personality"`
	Tone            string    `gorm:"column:tone" json:"tone"`
	SalesApproach   string    `gorm:"column:sales_approach" json:"sales_approach"`
	GreetingMessage string    `gorm:"column:greeting_message" json:"greeting_message"`
	Language        string    `gorm:"column:language" json:"language"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

func (AssistantProfile) TableName() string {
	return "assistant_profile"
}
