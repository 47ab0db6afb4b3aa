package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tanakrit-dev/uninews-backend/internal/cache"
	"github.com/tanakrit-dev/uninews-backend/internal/dto"
	"github.com/tanakrit-dev/uninews-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrNewsNotFound     = errors.New("news not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category still has articles")
)

// NewsService handles article and category CRUD. The public feed is
// served through an optional redis cache; rc may be nil.
type NewsService struct {
	db *gorm.DB
	rc *cache.RedisClient
}

func NewNewsService(db *gorm.DB, rc *cache.RedisClient) *NewsService {
	return &NewsService{db: db, rc: rc}
}

// List returns all articles with their category name, newest first.
func (s *NewsService) List(ctx context.Context) ([]dto.NewsRow, error) {
	if rows := s.rc.GetNewsFeed(ctx); rows != nil {
		return rows, nil
	}

	var rows []dto.NewsRow
	err := s.db.WithContext(ctx).Model(&models.News{}).
		Select("news.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = news.category_id").
		Order("news.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	s.rc.SetNewsFeed(ctx, rows)
	return rows, nil
}

// Get returns one article and bumps its view counter with a single
// atomic UPDATE.
func (s *NewsService) Get(ctx context.Context, id uuid.UUID) (*dto.NewsRow, error) {
	s.db.WithContext(ctx).Model(&models.News{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))

	var row dto.NewsRow
	err := s.db.WithContext(ctx).Model(&models.News{}).
		Select("news.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = news.category_id").
		Where("news.id = ?", id).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, ErrNewsNotFound
	}
	return &row, nil
}

func (s *NewsService) Create(ctx context.Context, req *dto.CreateNewsRequest) (*models.News, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, errors.New("title is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, errors.New("content is required")
	}

	news := models.News{
		ID:         uuid.New(),
		Title:      strings.TrimSpace(req.Title),
		Content:    req.Content,
		CategoryID: req.CategoryID,
		ImageURL:   req.ImageURL,
		AuthorName: req.AuthorName,
	}

	if err := s.db.WithContext(ctx).Create(&news).Error; err != nil {
		return nil, fmt.Errorf("failed to create news: %w", err)
	}

	s.rc.InvalidateNewsFeed(ctx)
	return &news, nil
}

func (s *NewsService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateNewsRequest) (*models.News, error) {
	result := s.db.WithContext(ctx).Model(&models.News{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":       req.Title,
			"content":     req.Content,
			"category_id": req.CategoryID,
			"image_url":   req.ImageURL,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNewsNotFound
	}

	s.rc.InvalidateNewsFeed(ctx)

	var news models.News
	if err := s.db.WithContext(ctx).First(&news, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &news, nil
}

func (s *NewsService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.News{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNewsNotFound
		}
		if err := tx.Delete(&models.Comment{}, "news_id = ?", id).Error; err != nil {
			return err
		}
		s.rc.InvalidateNewsFeed(ctx)
		return nil
	})
}

func (s *NewsService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *NewsService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}

	category := models.Category{ID: uuid.New(), Name: name}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (s *NewsService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	var count int64
	s.db.WithContext(ctx).Model(&models.News{}).Where("category_id = ?", id).Count(&count)
	if count > 0 {
		return ErrCategoryInUse
	}

	result := s.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
