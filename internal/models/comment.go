package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a user remark on an article. Comments that the moderation
// gate judged toxic are never persisted; existing comments are never
// edited, only deleted by their author or an admin.
type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	NewsID    uuid.UUID `gorm:"type:uuid;not null;index" json:"news_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
