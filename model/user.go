package model

import (
	"time"

	"gorm.io/gorm"
)

// User represents a signed-in visitor. Accounts are created on first
// successful OTP verification or Google sign-in; there is no password.
type User struct {
	ID          string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email       string         `gorm:"uniqueIndex;not null" json:"email"`
	Name        string         `json:"name"`
	GoogleID    string         `gorm:"index" json:"-"`
	Role        string         `gorm:"type:varchar(20);default:'user'" json:"role"` // user, admin
	LastLoginAt *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Downloads []DownloadEvent `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// EmailOTP stores a pending one-time sign-in code. Only the argon2id hash of
// the code is persisted; the plain code goes out by email and is never stored.
type EmailOTP struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"not null;index" json:"email"`
	CodeHash  []byte    `gorm:"type:bytea;not null" json:"-"`
	CodeSalt  []byte    `gorm:"type:bytea;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	Consumed  bool      `gorm:"default:false" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for EmailOTP
func (EmailOTP) TableName() string {
	return "email_otps"
}
