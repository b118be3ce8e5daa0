// file: internals/features/accounts/model/account_base.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Account is the common surface of the five identity tables. One auth service
// handles register/login/reset for every role through this interface; the
// concrete model only adds role-specific columns.
type Account interface {
	GetID() uuid.UUID
	GetName() string
	GetEmail() string
	GetMobile() string
	GetPasswordHash() string
	SetPasswordHash(hash string)
	SetIdentity(name, email, mobile string)
	IsApproved() bool
	SetApproved(approved bool)
	GetResetToken() *string
	GetResetExpires() *time.Time
	SetResetToken(token *string, expires *time.Time)
}

// BaseAccount carries the columns every identity table shares. Models embed it
// anonymously so GORM flattens the fields into their own table.
type BaseAccount struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;column:id"                       json:"id"`
	Name     string    `gorm:"type:varchar(120);not null;column:name"               json:"name"`
	Email    string    `gorm:"type:varchar(160);not null;uniqueIndex;column:email"  json:"email"`
	Mobile   string    `gorm:"type:varchar(20);not null;uniqueIndex;column:mobile"  json:"mobile"`
	Password string    `gorm:"type:varchar(100);not null;column:password"           json:"-"`
	Approved bool      `gorm:"not null;default:false;column:approved"               json:"approved"`

	PasswordResetToken   *string    `gorm:"type:varchar(64);column:password_reset_token" json:"-"`
	PasswordResetExpires *time.Time `gorm:"column:password_reset_expires"                json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (b *BaseAccount) GetID() uuid.UUID          { return b.ID }
func (b *BaseAccount) GetName() string           { return b.Name }
func (b *BaseAccount) GetEmail() string          { return b.Email }
func (b *BaseAccount) GetMobile() string         { return b.Mobile }
func (b *BaseAccount) GetPasswordHash() string   { return b.Password }
func (b *BaseAccount) SetPasswordHash(h string)  { b.Password = h }
func (b *BaseAccount) IsApproved() bool          { return b.Approved }
func (b *BaseAccount) SetApproved(approved bool) { b.Approved = approved }

func (b *BaseAccount) SetIdentity(name, email, mobile string) {
	b.Name = name
	b.Email = email
	b.Mobile = mobile
}

func (b *BaseAccount) GetResetToken() *string       { return b.PasswordResetToken }
func (b *BaseAccount) GetResetExpires() *time.Time  { return b.PasswordResetExpires }
func (b *BaseAccount) SetResetToken(token *string, expires *time.Time) {
	b.PasswordResetToken = token
	b.PasswordResetExpires = expires
}
