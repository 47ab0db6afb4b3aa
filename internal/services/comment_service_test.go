package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/tanakrit-dev/uninews-backend/internal/models"
	"gorm.io/gorm"
)

func seedNews(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	article := models.News{ID: uuid.New(), Title: "Orientation week", Content: "Schedule inside."}
	if err := db.Create(&article).Error; err != nil {
		t.Fatalf("seed news: %v", err)
	}
	return article.ID
}

func commentCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.Comment{}).Count(&n).Error; err != nil {
		t.Fatalf("count comments: %v", err)
	}
	return n
}

func TestCommentService_ToxicVerdictRejects(t *testing.T) {
	db := setupTestDB(t)
	gate := NewModerationService(&fakeCompleter{response: `{"isToxic": true}`})
	svc := NewCommentService(db, gate, 2000)
	newsID := seedNews(t, db)

	_, err := svc.Create(context.Background(), newsID, uuid.New(), "you are stupid")
	if !errors.Is(err, ErrCommentRejected) {
		t.Fatalf("Create() error = %v, want ErrCommentRejected", err)
	}
	if n := commentCount(t, db); n != 0 {
		t.Errorf("rejected comment was persisted: count = %d", n)
	}
}

func TestCommentService_CleanVerdictPersists(t *testing.T) {
	db := setupTestDB(t)
	gate := NewModerationService(&fakeCompleter{response: `{"isToxic": false}`})
	svc := NewCommentService(db, gate, 2000)
	newsID := seedNews(t, db)

	comment, err := svc.Create(context.Background(), newsID, uuid.New(), "great article!")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if comment.Content != "great article!" {
		t.Errorf("content = %q", comment.Content)
	}
	if n := commentCount(t, db); n != 1 {
		t.Errorf("comment count = %d, want 1", n)
	}
}

func TestCommentService_GateFailurePersists(t *testing.T) {
	// A dead classifier must not block participation: the gate fails
	// open and the comment lands.
	db := setupTestDB(t)
	gate := NewModerationService(&fakeCompleter{err: errors.New("connection refused")})
	svc := NewCommentService(db, gate, 2000)
	newsID := seedNews(t, db)

	if _, err := svc.Create(context.Background(), newsID, uuid.New(), "hello world"); err != nil {
		t.Fatalf("Create() error = %v, want nil on classifier failure", err)
	}
	if n := commentCount(t, db); n != 1 {
		t.Errorf("comment count = %d, want 1", n)
	}
}

func TestCommentService_CreateValidation(t *testing.T) {
	db := setupTestDB(t)
	gate := NewModerationService(&fakeCompleter{response: `{"isToxic": false}`})
	svc := NewCommentService(db, gate, 50)
	newsID := seedNews(t, db)

	if _, err := svc.Create(context.Background(), newsID, uuid.New(), "   "); err == nil {
		t.Error("blank comment accepted")
	}

	long := strings.Repeat("a", 51)
	if _, err := svc.Create(context.Background(), newsID, uuid.New(), long); !errors.Is(err, ErrCommentTooLong) {
		t.Errorf("oversized comment error = %v, want ErrCommentTooLong", err)
	}

	if _, err := svc.Create(context.Background(), uuid.New(), uuid.New(), "orphan"); !errors.Is(err, ErrNewsNotFound) {
		t.Errorf("comment on missing article error = %v, want ErrNewsNotFound", err)
	}
}

func TestCommentService_ListByNewsOldestFirst(t *testing.T) {
	db := setupTestDB(t)
	gate := NewModerationService(&fakeCompleter{response: `{"isToxic": false}`})
	svc := NewCommentService(db, gate, 2000)
	newsID := seedNews(t, db)

	author := models.User{ID: uuid.New(), Email: "p@example.com", Password: "x", FirstName: "Ploy"}
	if err := db.Create(&author).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	base := time.Now().Add(-time.Hour)
	for i, offset := range []time.Duration{20 * time.Minute, 5 * time.Minute, 40 * time.Minute} {
		comment := models.Comment{
			ID: uuid.New(), NewsID: newsID, UserID: author.ID,
			Content: "c", CreatedAt: base.Add(offset),
		}
		if err := db.Create(&comment).Error; err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	rows, err := svc.ListByNews(context.Background(), newsID)
	if err != nil {
		t.Fatalf("ListByNews() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].CreatedAt.Before(rows[i-1].CreatedAt) {
			t.Errorf("comments out of order at index %d", i)
		}
	}
	if rows[0].FirstName != "Ploy" {
		t.Errorf("author first name = %q, want Ploy", rows[0].FirstName)
	}
}

func TestCommentService_Delete(t *testing.T) {
	db := setupTestDB(t)
	gate := NewModerationService(&fakeCompleter{response: `{"isToxic": false}`})
	svc := NewCommentService(db, gate, 2000)
	newsID := seedNews(t, db)

	author := uuid.New()
	comment, err := svc.Create(context.Background(), newsID, author, "delete me")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	stranger := uuid.New()
	if err := svc.Delete(context.Background(), comment.ID, stranger, false); !errors.Is(err, ErrNotCommentOwner) {
		t.Errorf("stranger delete error = %v, want ErrNotCommentOwner", err)
	}

	if err := svc.Delete(context.Background(), comment.ID, author, false); err != nil {
		t.Errorf("author delete error = %v", err)
	}
	if n := commentCount(t, db); n != 0 {
		t.Errorf("comment survived author delete: count = %d", n)
	}

	// Admin can delete someone else's comment.
	comment2, err := svc.Create(context.Background(), newsID, author, "admin target")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := svc.Delete(context.Background(), comment2.ID, stranger, true); err != nil {
		t.Errorf("admin delete error = %v", err)
	}

	if err := svc.Delete(context.Background(), uuid.New(), author, true); !errors.Is(err, ErrCommentNotFound) {
		t.Errorf("missing delete error = %v, want ErrCommentNotFound", err)
	}
}
