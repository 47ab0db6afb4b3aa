package services

import (
	"errors"
	"testing"
	"time"

	"github.com/tanakrit-dev/uninews-backend/internal/config"
	"github.com/tanakrit-dev/uninews-backend/internal/dto"
	"github.com/tanakrit-dev/uninews-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
	return NewAuthService(db, cfg), db
}

func registerReq() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:            "nok@example.com",
		Password:         "longenough",
		FirstName:        "Nok",
		SecurityQuestion: "First pet's name?",
		SecurityAnswer:   "  MaLi  ",
	}
}

func TestAuthService_RegisterHashesSecrets(t *testing.T) {
	svc, db := testAuthService(t)

	resp, err := svc.Register(registerReq())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("Register() returned empty token pair")
	}
	if resp.User.Role != "user" {
		t.Errorf("new user role = %q, want user", resp.User.Role)
	}

	var user models.User
	if err := db.First(&user, "email = ?", "nok@example.com").Error; err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if user.Password == "longenough" {
		t.Error("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("longenough")); err != nil {
		t.Errorf("stored password is not a bcrypt hash of the input: %v", err)
	}
	// Answer is normalized (trimmed, lowercased) before hashing.
	if err := bcrypt.CompareHashAndPassword([]byte(user.SecurityAnswer), []byte("mali")); err != nil {
		t.Errorf("stored security answer is not a normalized bcrypt hash: %v", err)
	}
}

func TestAuthService_RegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := testAuthService(t)

	if _, err := svc.Register(registerReq()); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	if _, err := svc.Register(registerReq()); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("second Register() error = %v, want ErrEmailTaken", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	svc, db := testAuthService(t)
	if _, err := svc.Register(registerReq()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, err := svc.Login(&dto.LoginRequest{Email: "nok@example.com", Password: "longenough"}); err != nil {
		t.Errorf("Login() error = %v", err)
	}

	if _, err := svc.Login(&dto.LoginRequest{Email: "nok@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "longenough"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", err)
	}

	db.Model(&models.User{}).Where("email = ?", "nok@example.com").Update("is_banned", true)
	if _, err := svc.Login(&dto.LoginRequest{Email: "nok@example.com", Password: "longenough"}); !errors.Is(err, ErrUserBanned) {
		t.Errorf("banned login error = %v, want ErrUserBanned", err)
	}
}

func TestAuthService_RefreshRotates(t *testing.T) {
	svc, _ := testAuthService(t)
	resp, err := svc.Register(registerReq())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	next, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if next.RefreshToken == resp.RefreshToken {
		t.Error("refresh token was not rotated")
	}

	// The old token is single-use.
	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("reused token error = %v, want ErrInvalidToken", err)
	}
}

func TestAuthService_LogoutRevokesToken(t *testing.T) {
	svc, _ := testAuthService(t)
	resp, err := svc.Register(registerReq())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("refresh after logout error = %v, want ErrInvalidToken", err)
	}
}

func TestAuthService_ResetPassword(t *testing.T) {
	svc, _ := testAuthService(t)
	resp, err := svc.Register(registerReq())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := svc.ResetPassword(&dto.ResetPasswordRequest{
		Email: "nok@example.com", Answer: "wrong", NewPassword: "replacement1",
	}); !errors.Is(err, ErrWrongSecurityAnswer) {
		t.Errorf("wrong answer error = %v, want ErrWrongSecurityAnswer", err)
	}

	// Case and whitespace must not matter.
	if err := svc.ResetPassword(&dto.ResetPasswordRequest{
		Email: "nok@example.com", Answer: "MALI ", NewPassword: "replacement1",
	}); err != nil {
		t.Fatalf("ResetPassword() error = %v", err)
	}

	if _, err := svc.Login(&dto.LoginRequest{Email: "nok@example.com", Password: "replacement1"}); err != nil {
		t.Errorf("login with new password error = %v", err)
	}
	if _, err := svc.Login(&dto.LoginRequest{Email: "nok@example.com", Password: "longenough"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("login with old password error = %v, want ErrInvalidCredentials", err)
	}

	// Recovery revokes all outstanding refresh tokens.
	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("refresh after reset error = %v, want ErrInvalidToken", err)
	}

	if err := svc.ResetPassword(&dto.ResetPasswordRequest{
		Email: "ghost@example.com", Answer: "mali", NewPassword: "replacement1",
	}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown email error = %v, want ErrUserNotFound", err)
	}
}
