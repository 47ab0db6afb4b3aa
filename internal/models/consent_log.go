package models

import (
	"time"

	"github.com/google/uuid"
)

// ConsentLog records one cookie-consent acceptance (PDPA). UserID is
// nil for anonymous visitors.
type ConsentLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	IPAddress string     `gorm:"size:45" json:"ip_address"`
	UserAgent string     `gorm:"size:512" json:"user_agent"`
	CreatedAt time.Time  `json:"created_at"`
}
