// file: internals/features/accounts/service/auth_service.go
package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/configs"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/accounts/dto"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/accounts/model"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/helpers/mailer"
)

const (
	bcryptCost       = 10
	tokenLifetime    = 7 * 24 * time.Hour
	resetTokenExpiry = time.Hour
)

// AuthService implements register/login/reset for every role; the RoleSpec
// supplies the table and the role-specific hooks.
type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

func (s *AuthService) findByEmail(spec *RoleSpec, email string) (model.Account, error) {
	acct := spec.New()
	err := s.DB.Where("LOWER(email) = LOWER(?)", email).First(acct).Error
	return acct, err
}

// Register creates a new account for the given role. Approvable roles start
// unapproved and every admin gets a notification mail.
func (s *AuthService) Register(spec *RoleSpec, req *dto.RegisterRequest) (model.Account, error) {
	if _, err := s.findByEmail(spec, req.Email); err == nil {
		return nil, fiber.NewError(fiber.StatusConflict, "Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var mobileCount int64
	acct := spec.New()
	s.DB.Model(acct).Where("mobile = ?", req.Mobile).Count(&mobileCount)
	if mobileCount > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Mobile number already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	acct.SetIdentity(req.Name, req.Email, req.Mobile)
	acct.SetPasswordHash(string(hash))
	acct.SetApproved(spec.AutoApprove)

	if spec.ApplyExtras != nil {
		if err := spec.ApplyExtras(s.DB, acct, req); err != nil {
			return nil, err
		}
	}
	if spec.CheckUnique != nil {
		if err := spec.CheckUnique(s.DB, acct, uuid.Nil); err != nil {
			return nil, err
		}
	}

	if err := s.DB.Create(acct).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Email already registered")
		}
		return nil, err
	}

	if !spec.AutoApprove {
		s.notifyAdmins(spec.Role, acct)
	}
	return acct, nil
}

// Login verifies credentials and issues a 7-day JWT carrying {id, role}.
func (s *AuthService) Login(spec *RoleSpec, req *dto.LoginRequest) (string, model.Account, error) {
	acct, err := s.findByEmail(spec, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(acct.GetPasswordHash()), []byte(req.Password)) != nil {
		return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !acct.IsApproved() {
		return "", nil, fiber.NewError(fiber.StatusForbidden, "Account pending approval")
	}

	claims := jwt.MapClaims{
		"id":   acct.GetID().String(),
		"role": spec.Role,
		"exp":  time.Now().Add(tokenLifetime).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", nil, err
	}
	return token, acct, nil
}

// ForgotPassword stores a one-hour reset token and mails the reset link.
func (s *AuthService) ForgotPassword(spec *RoleSpec, email string) error {
	acct, err := s.findByEmail(spec, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "No account found with that email")
		}
		return err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	token := hex.EncodeToString(raw)
	expires := time.Now().Add(resetTokenExpiry)

	if err := s.DB.Model(acct).Updates(map[string]interface{}{
		"password_reset_token":   token,
		"password_reset_expires": expires,
	}).Error; err != nil {
		return err
	}

	mailer.SendPasswordReset(acct.GetName(), acct.GetEmail(), spec.Slug, token)
	return nil
}

// ResetPassword consumes a valid, unexpired token and sets the new password.
func (s *AuthService) ResetPassword(spec *RoleSpec, req *dto.ResetPasswordRequest) error {
	acct := spec.New()
	err := s.DB.Where("password_reset_token = ?", req.Token).First(acct).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid or expired reset token")
		}
		return err
	}
	expires := acct.GetResetExpires()
	if expires == nil || time.Now().After(*expires) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid or expired reset token")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return err
	}

	return s.DB.Model(acct).Updates(map[string]interface{}{
		"password":               string(hash),
		"password_reset_token":   nil,
		"password_reset_expires": nil,
	}).Error
}

func (s *AuthService) notifyAdmins(role string, acct model.Account) {
	var admins []model.AdminModel
	if err := s.DB.Find(&admins).Error; err != nil {
		log.Printf("[ERROR] failed to load admins for notification: %v", err)
		return
	}
	if len(admins) == 0 {
		mailer.SendRegistrationNotice(role, acct.GetName(), acct.GetEmail())
		return
	}
	for _, admin := range admins {
		mailer.SendAsync(admin.Name, admin.Email,
			"New Registration Pending Approval",
			"A new "+role+" account has registered and is awaiting approval.\n\nName: "+
				acct.GetName()+"\nEmail: "+acct.GetEmail())
	}
}
