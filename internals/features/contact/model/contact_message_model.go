package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactMessageModel represents the contact_messages table: an
// unauthenticated enquiry resolved (or deleted) by an admin.
type ContactMessageModel struct {
	ContactMessageID         uuid.UUID `gorm:"column:contact_message_id;type:uuid;primaryKey" json:"id"`
	ContactMessageName       string    `gorm:"column:contact_message_name;type:text;not null" json:"name"`
	ContactMessageContact    string    `gorm:"column:contact_message_contact;type:text;not null" json:"contact"`
	ContactMessageBody       string    `gorm:"column:contact_message_body;type:text;not null" json:"message"`
	ContactMessageIsResolved bool      `gorm:"column:contact_message_is_resolved;not null;default:false" json:"isResolved"`
	ContactMessageCreatedAt  time.Time `gorm:"column:contact_message_created_at;autoCreateTime" json:"createdAt"`
}

func (ContactMessageModel) TableName() string {
	return "contact_messages"
}

func (m *ContactMessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ContactMessageID == uuid.Nil {
		m.ContactMessageID = uuid.New()
	}
	return nil
}
