// file: internals/features/contact/model/contact_message_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactMessageModel keeps a copy of every public contact-form submission;
// the mail relay is fire-and-forget, the row is the durable record.
type ContactMessageModel struct {
	ContactMessageID      uuid.UUID `gorm:"type:uuid;primaryKey;column:contact_message_id"           json:"contact_message_id"`
	ContactMessageName    string    `gorm:"type:varchar(120);not null;column:contact_message_name"   json:"contact_message_name"`
	ContactMessageEmail   string    `gorm:"type:varchar(160);not null;column:contact_message_email"  json:"contact_message_email"`
	ContactMessageSubject string    `gorm:"type:varchar(200);not null;column:contact_message_subject" json:"contact_message_subject"`
	ContactMessageBody    string    `gorm:"type:text;not null;column:contact_message_body"           json:"contact_message_body"`

	ContactMessageCreatedAt time.Time `gorm:"autoCreateTime;column:contact_message_created_at" json:"contact_message_created_at"`
	ContactMessageUpdatedAt time.Time `gorm:"autoUpdateTime;column:contact_message_updated_at" json:"contact_message_updated_at"`
}

func (ContactMessageModel) TableName() string { return "contact_messages" }

func (m *ContactMessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ContactMessageID == uuid.Nil {
		m.ContactMessageID = uuid.New()
	}
	return nil
}
