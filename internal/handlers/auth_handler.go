package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mhmdhisham/eventgate/internal/helpers"
	"github.com/mhmdhisham/eventgate/internal/middleware"
	"github.com/mhmdhisham/eventgate/internal/repository"
)

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type VerifyOtpRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

type ResendOtpRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	users := repository.NewUserRepository(middleware.GetDB(c))
	user, err := users.Create(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if err == repository.ErrEmailTaken {
			helpers.RespondWithError(c, http.StatusBadRequest, "User already exists")
			return
		}
		log.Error().Err(err).Msg("failed to create user")
		helpers.RespondWithDetail(c, http.StatusInternalServerError, "Error creating user", err)
		return
	}

	token, err := helpers.SignToken(user.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign token")
		helpers.RespondWithDetail(c, http.StatusInternalServerError, "Error creating user", err)
		return
	}

	helpers.RespondWithToken(c, http.StatusCreated, "User created successfully. Please verify your email.", user, token)
}

func VerifyOtp(c *gin.Context) {
	var req VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	users := repository.NewUserRepository(middleware.GetDB(c))
	user, err := users.VerifyOTP(c.Request.Context(), req.Email, req.OTP, time.Now())
	if err != nil {
		switch err {
		case repository.ErrUserNotFound:
			helpers.RespondWithError(c, http.StatusNotFound, "User not found")
		case repository.ErrInvalidOTP:
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid OTP")
		case repository.ErrOTPExpired:
			helpers.RespondWithError(c, http.StatusBadRequest, "OTP has expired")
		default:
			log.Error().Err(err).Msg("failed to verify otp")
			helpers.RespondWithDetail(c, http.StatusInternalServerError, "Error verifying OTP", err)
		}
		return
	}

	token, err := helpers.SignToken(user.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign token")
		helpers.RespondWithDetail(c, http.StatusInternalServerError, "Error verifying OTP", err)
		return
	}

	helpers.RespondWithToken(c, http.StatusOK, "Email verified successfully", user, token)
}

func ResendOtp(c *gin.Context) {
	var req ResendOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	users := repository.NewUserRepository(middleware.GetDB(c))
	if _, err := users.RefreshOTP(c.Request.Context(), req.Email, time.Now()); err != nil {
		if err == repository.ErrUserNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Msg("failed to refresh otp")
		helpers.RespondWithDetail(c, http.StatusInternalServerError, "Error resending OTP", err)
		return
	}

	// Delivery happens over an external side-channel; the code is never
	// returned in the response.
	helpers.RespondWithData(c, http.StatusOK, "OTP sent successfully", nil)
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	users := repository.NewUserRepository(middleware.GetDB(c))
	user, err := users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := helpers.SignToken(user.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign token")
		helpers.RespondWithDetail(c, http.StatusInternalServerError, "Error logging in", err)
		return
	}

	helpers.RespondWithToken(c, http.StatusOK, "Login successful", user, token)
}

func GetCurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "No token provided, authorization denied")
		return
	}
	helpers.RespondWithData(c, http.StatusOK, "", user)
}
