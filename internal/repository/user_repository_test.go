package repository

import (
	"context"
	"testing"
	"time"
)

func TestCreateUser_IssuesPendingOTP(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.Create(context.Background(), "Aya", "Aya@X.com", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Email != "aya@x.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
	if user.IsVerified {
		t.Fatalf("new user must start unverified")
	}
	if user.OTP == nil || user.OTPExpires == nil {
		t.Fatalf("new user must have both otp fields set")
	}
	if len(*user.OTP) != 6 {
		t.Fatalf("expected 6-digit otp, got %q", *user.OTP)
	}
	if (*user.OTP)[0] == '0' {
		t.Fatalf("otp leading digit must not be zero, got %q", *user.OTP)
	}
	until := time.Until(*user.OTPExpires)
	if until <= 9*time.Minute || until > 10*time.Minute {
		t.Fatalf("expected ~10 minute expiry, got %v", until)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	if _, err := repo.Create(context.Background(), "A", "a@x.com", "secret1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Create(context.Background(), "B", "A@X.COM", "secret2"); err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestVerifyOTP_StateMachine(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user, err := repo.Create(ctx, "A", "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	now := time.Now()

	if _, err := repo.VerifyOTP(ctx, "missing@x.com", "123456", now); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	wrong := "000000"
	if wrong == *user.OTP {
		wrong = "000001"
	}
	if _, err := repo.VerifyOTP(ctx, "a@x.com", wrong, now); err != ErrInvalidOTP {
		t.Fatalf("expected ErrInvalidOTP, got %v", err)
	}

	// Correct code after the window: expiry wins and the code is dead.
	late := now.Add(11 * time.Minute)
	if _, err := repo.VerifyOTP(ctx, "a@x.com", *user.OTP, late); err != ErrOTPExpired {
		t.Fatalf("expected ErrOTPExpired, got %v", err)
	}

	verified, err := repo.VerifyOTP(ctx, "a@x.com", *user.OTP, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !verified.IsVerified {
		t.Fatalf("expected verified user")
	}
	if verified.OTP != nil || verified.OTPExpires != nil {
		t.Fatalf("otp fields must be cleared on success")
	}

	stored, err := repo.FindByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stored.IsVerified || stored.OTP != nil || stored.OTPExpires != nil {
		t.Fatalf("verification must persist with cleared otp fields")
	}

	// Re-verify on a verified account: cleared fields never match.
	if _, err := repo.VerifyOTP(ctx, "a@x.com", *user.OTP, now); err != ErrInvalidOTP {
		t.Fatalf("expected ErrInvalidOTP on re-verify, got %v", err)
	}
}

func TestRefreshOTP_ReplacesBothFieldsOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user, err := repo.Create(ctx, "A", "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	firstCode := *user.OTP
	firstExpiry := *user.OTPExpires

	if _, err := repo.RefreshOTP(ctx, "missing@x.com", time.Now()); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	later := time.Now().Add(5 * time.Minute)
	newCode, err := repo.RefreshOTP(ctx, "a@x.com", later)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := repo.FindByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.IsVerified {
		t.Fatalf("resend must not change verification state")
	}
	if stored.OTP == nil || *stored.OTP != newCode {
		t.Fatalf("expected stored otp %q, got %v", newCode, stored.OTP)
	}
	if stored.OTPExpires == nil || !stored.OTPExpires.After(firstExpiry) {
		t.Fatalf("expected refreshed expiry after %v, got %v", firstExpiry, stored.OTPExpires)
	}

	// The old code is gone; only the new one can verify.
	if firstCode != newCode {
		if _, err := repo.VerifyOTP(ctx, "a@x.com", firstCode, time.Now()); err != ErrInvalidOTP {
			t.Fatalf("expected ErrInvalidOTP for stale code, got %v", err)
		}
	}
	if _, err := repo.VerifyOTP(ctx, "a@x.com", newCode, time.Now()); err != nil {
		t.Fatalf("expected new code to verify, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if _, err := repo.Create(ctx, "A", "a@x.com", "secret1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := repo.Authenticate(ctx, "A@X.com", "secret1")
	if err != nil {
		t.Fatalf("expected successful login, got %v", err)
	}
	if user.Email != "a@x.com" {
		t.Fatalf("unexpected user %q", user.Email)
	}

	if _, err := repo.Authenticate(ctx, "a@x.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := repo.Authenticate(ctx, "missing@x.com", "secret1"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
