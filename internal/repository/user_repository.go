package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mhmdhisham/eventgate/internal/helpers"
	"github.com/mhmdhisham/eventgate/internal/models"
)

// UserRepository owns account credentials and the passcode verification
// state machine. An account is either unverified with no code, unverified
// with a pending code, or verified; OTP and OTPExpires are always both set
// or both nil.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create registers an unverified account with a freshly issued passcode.
func (r *UserRepository) Create(ctx context.Context, name, email, password string) (*models.User, error) {
	email = NormalizeEmail(email)

	var existing models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	otp, err := helpers.GenerateOTP()
	if err != nil {
		return nil, err
	}
	expires := time.Now().Add(helpers.OTPValidity)

	user := models.User{
		Name:       name,
		Email:      email,
		Password:   string(hashed),
		Role:       models.RoleUser,
		OTP:        &otp,
		OTPExpires: &expires,
	}

	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate compares the submitted password against the stored bcrypt
// hash. Lookup failure and hash mismatch are indistinguishable to the caller.
func (r *UserRepository) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// VerifyOTP consumes a passcode. Success flips the account to verified and
// clears both passcode fields in the same update; that transition is
// irreversible. A verified account has nil fields, which can never match a
// submitted code, so a repeated verify fails with ErrInvalidOTP.
func (r *UserRepository) VerifyOTP(ctx context.Context, email, code string, now time.Time) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if user.OTP == nil || *user.OTP != code {
		return nil, ErrInvalidOTP
	}
	if user.OTPExpires == nil || !now.Before(*user.OTPExpires) {
		return nil, ErrOTPExpired
	}

	updates := map[string]interface{}{
		"is_verified": true,
		"otp":         nil,
		"otp_expires": nil,
	}
	if err := r.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	user.IsVerified = true
	user.OTP = nil
	user.OTPExpires = nil
	return &user, nil
}

// RefreshOTP replaces both passcode fields without touching the verified
// flag. Returns the new code for the delivery side-channel.
func (r *UserRepository) RefreshOTP(ctx context.Context, email string, now time.Time) (string, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&user).Error; err != nil {
		return "", ErrUserNotFound
	}

	otp, err := helpers.GenerateOTP()
	if err != nil {
		return "", err
	}
	expires := now.Add(helpers.OTPValidity)

	updates := map[string]interface{}{
		"otp":         otp,
		"otp_expires": expires,
	}
	if err := r.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return "", err
	}
	return otp, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
