package models

import (
	"time"

	"github.com/google/uuid"
)

// Report statuses. A report starts pending and is moved by an admin;
// there is no delete path.
const (
	ReportStatusPending  = "pending"
	ReportStatusResolved = "resolved"
	ReportStatusClosed   = "closed"
)

// ValidReportStatus reports whether s is one of the three lifecycle states.
func ValidReportStatus(s string) bool {
	return s == ReportStatusPending || s == ReportStatusResolved || s == ReportStatusClosed
}

// Report is a user-filed issue. AdminReply is set only by the admin
// reply action, which also forces the status to resolved. The UserID
// reference may outlive the user record; reads tolerate the orphan.
type Report struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Topic       string    `gorm:"size:255;not null" json:"topic"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Status      string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	AdminReply  *string   `gorm:"type:text" json:"admin_reply"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
