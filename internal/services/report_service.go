package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tanakrit-dev/uninews-backend/internal/dto"
	"github.com/tanakrit-dev/uninews-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrReportNotFound      = errors.New("report not found")
	ErrInvalidReportStatus = errors.New("invalid status: must be pending, resolved, or closed")
)

// ReportService owns the report lifecycle: pending at creation, moved
// by an admin to resolved or closed, with an optional admin reply that
// forces resolved. Reports are never deleted.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

func (s *ReportService) Create(userID uuid.UUID, req *dto.CreateReportRequest) (*models.Report, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, errors.New("topic is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, errors.New("description is required")
	}

	report := models.Report{
		ID:          uuid.New(),
		UserID:      userID,
		Topic:       strings.TrimSpace(req.Topic),
		Description: req.Description,
		Status:      models.ReportStatusPending,
	}

	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return &report, nil
}

// ListByUser returns one user's reports, newest first.
func (s *ReportService) ListByUser(userID uuid.UUID) ([]models.Report, error) {
	var reports []models.Report
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// ListAll returns every report joined with reporter identity for the
// admin view, newest first. The join is a LEFT JOIN: a report whose
// reporter was since deleted still lists, with empty reporter fields.
func (s *ReportService) ListAll() ([]dto.AdminReportRow, error) {
	var rows []dto.AdminReportRow
	err := s.db.Model(&models.Report{}).
		Select("reports.*, users.first_name AS reporter_first_name, users.email AS reporter_email").
		Joins("LEFT JOIN users ON users.id = reports.user_id").
		Order("reports.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateStatus moves a report to one of the three lifecycle states via
// a single UPDATE so concurrent admin edits cannot lose writes.
func (s *ReportService) UpdateStatus(reportID uuid.UUID, status string) (*models.Report, error) {
	if !models.ValidReportStatus(status) {
		return nil, ErrInvalidReportStatus
	}

	result := s.db.Model(&models.Report{}).
		Where("id = ?", reportID).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrReportNotFound
	}

	return s.get(reportID)
}

// Reply sets the admin reply and forces the status to resolved in one
// atomic UPDATE; both fields change together or not at all.
func (s *ReportService) Reply(reportID uuid.UUID, replyText string) (*models.Report, error) {
	if strings.TrimSpace(replyText) == "" {
		return nil, errors.New("reply text is required")
	}

	result := s.db.Model(&models.Report{}).
		Where("id = ?", reportID).
		Updates(map[string]interface{}{
			"admin_reply": replyText,
			"status":      models.ReportStatusResolved,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrReportNotFound
	}

	return s.get(reportID)
}

func (s *ReportService) get(reportID uuid.UUID) (*models.Report, error) {
	var report models.Report
	if err := s.db.First(&report, "id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}
