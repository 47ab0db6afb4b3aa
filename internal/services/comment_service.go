package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tanakrit-dev/uninews-backend/internal/dto"
	"github.com/tanakrit-dev/uninews-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCommentRejected = errors.New("comment rejected by moderation")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("only the author or an admin can delete this comment")
	ErrCommentTooLong  = errors.New("comment exceeds the maximum length")
)

// CommentService persists article comments behind the moderation gate.
// The gate runs server-side on every submission; a client cannot skip
// it by calling the persistence endpoint directly.
type CommentService struct {
	db       *gorm.DB
	gate     *ModerationService
	maxChars int
}

func NewCommentService(db *gorm.DB, gate *ModerationService, maxChars int) *CommentService {
	return &CommentService{db: db, gate: gate, maxChars: maxChars}
}

// Create validates, moderates, and persists one comment. A toxic
// verdict yields ErrCommentRejected and nothing is written; a gate
// failure lets the comment through (the gate fails open internally).
func (s *CommentService) Create(ctx context.Context, newsID, userID uuid.UUID, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.New("comment text is required")
	}
	if len([]rune(content)) > s.maxChars {
		return nil, ErrCommentTooLong
	}

	var count int64
	s.db.WithContext(ctx).Model(&models.News{}).Where("id = ?", newsID).Count(&count)
	if count == 0 {
		return nil, ErrNewsNotFound
	}

	if verdict := s.gate.Evaluate(ctx, content); verdict.Toxic {
		return nil, ErrCommentRejected
	}

	comment := models.Comment{
		ID:      uuid.New(),
		NewsID:  newsID,
		UserID:  userID,
		Content: content,
	}

	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return &comment, nil
}

// ListByNews returns an article's comments oldest first, joined with
// the author's display fields. The join is a LEFT JOIN so comments from
// deleted users still render.
func (s *CommentService) ListByNews(ctx context.Context, newsID uuid.UUID) ([]dto.CommentRow, error) {
	var rows []dto.CommentRow
	err := s.db.WithContext(ctx).Model(&models.Comment{}).
		Select("comments.*, users.first_name, users.last_name, users.role, users.profile_image").
		Joins("LEFT JOIN users ON users.id = comments.user_id").
		Where("comments.news_id = ?", newsID).
		Order("comments.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes a comment if the caller authored it or is an admin.
func (s *CommentService) Delete(ctx context.Context, commentID, callerID uuid.UUID, callerIsAdmin bool) error {
	var comment models.Comment
	if err := s.db.WithContext(ctx).First(&comment, "id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if comment.UserID != callerID && !callerIsAdmin {
		return ErrNotCommentOwner
	}

	return s.db.WithContext(ctx).Delete(&comment).Error
}
