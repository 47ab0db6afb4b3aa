package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateReportRequest struct {
	Topic       string `json:"topic"`
	Description string `json:"description"`
}

type UpdateReportStatusRequest struct {
	Status string `json:"status"`
}

type ReplyReportRequest struct {
	Reply string `json:"reply"`
}

// AdminReportRow is a report joined with reporter identity for the
// admin view. Reporter fields are empty when the user was deleted.
type AdminReportRow struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	Topic             string    `json:"topic"`
	Description       string    `json:"description"`
	Status            string    `json:"status"`
	AdminReply        *string   `json:"admin_reply"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	ReporterFirstName string    `json:"reporter_first_name"`
	ReporterEmail     string    `json:"reporter_email"`
}
