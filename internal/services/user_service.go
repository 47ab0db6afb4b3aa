package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/tanakrit-dev/uninews-backend/internal/models"
	"gorm.io/gorm"
)

var ErrSelfAction = errors.New("admins cannot ban or delete themselves")

// UserService covers the admin user-management panel.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// List returns all users newest first. Password and security-answer
// hashes are excluded at the JSON layer but also never selected here.
func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	err := s.db.
		Omit("password", "security_answer").
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// SetBanned toggles suspension. Banning also revokes the user's
// refresh tokens so existing sessions die at access-token expiry.
func (s *UserService) SetBanned(adminID, userID uuid.UUID, banned bool) error {
	if adminID == userID {
		return ErrSelfAction
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("is_banned", banned)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		if banned {
			return tx.Model(&models.RefreshToken{}).
				Where("user_id = ?", userID).
				Update("revoked", true).Error
		}
		return nil
	})
}

// Delete removes a user and their sessions. Reports are intentionally
// kept; the report read path tolerates the orphaned reference.
func (s *UserService) Delete(adminID, userID uuid.UUID) error {
	if adminID == userID {
		return ErrSelfAction
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		tx.Where("user_id = ?", userID).Delete(&models.RefreshToken{})

		result := tx.Delete(&models.User{}, "id = ?", userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}
