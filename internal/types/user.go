package types

import (
	"time"

	"github.com/google/uuid"
)

// User is a tenant: its products and assistant profile are invisible to every
// other user.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password    string    `gorm:"not null;column:password" json:"-"`
	FullName    string    `gorm:"not null;column:full_name" json:"full_name"`
	CompanyName string    `gorm:"column:company_name" json:"company_name"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string {
	return "user"
}
