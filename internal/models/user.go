package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a portal account. Passwords and security answers are bcrypt
// hashes, never plaintext.
type User struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email            string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password         string         `gorm:"not null" json:"-"`
	Prefix           string         `gorm:"size:30" json:"prefix"`
	FirstName        string         `gorm:"size:100" json:"first_name"`
	LastName         string         `gorm:"size:100" json:"last_name"`
	Phone            string         `gorm:"size:30" json:"phone"`
	Gender           string         `gorm:"size:20" json:"gender"`
	Role             string         `gorm:"size:20;default:'user'" json:"role"`
	IsBanned         bool           `gorm:"default:false" json:"is_banned"`
	SecurityQuestion string         `gorm:"size:255" json:"security_question"`
	SecurityAnswer   string         `gorm:"size:255" json:"-"`
	ProfileImage     string         `gorm:"type:text" json:"profile_image"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
