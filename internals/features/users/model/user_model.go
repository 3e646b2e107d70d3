package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel represents the users table: back-office credential holders.
type UserModel struct {
	UserID        uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"id"`
	UserEmail     string    `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex" json:"email"`
	UserPassword  string    `gorm:"column:user_password;type:text;not null" json:"-"`
	UserName      string    `gorm:"column:user_name;type:text;not null" json:"name"`
	UserRole      string    `gorm:"column:user_role;type:varchar(20);not null;default:'admin'" json:"role"`
	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"createdAt"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	if m.UserRole == "" {
		m.UserRole = "admin"
	}
	return nil
}
