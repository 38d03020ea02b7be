package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mhmdhisham/eventgate/internal/helpers"
	"github.com/mhmdhisham/eventgate/internal/middleware"
	"github.com/mhmdhisham/eventgate/internal/models"
	"github.com/mhmdhisham/eventgate/internal/repository"
)

type BookingRequest struct {
	EventID          uuid.UUID `json:"eventId" binding:"required"`
	Name             string    `json:"name" binding:"required"`
	Phone            string    `json:"phone" binding:"required"`
	Email            string    `json:"email" binding:"required,email"`
	NationalID       string    `json:"nationalId" binding:"required"`
	AcademicYear     string    `json:"academicYear" binding:"required"`
	AcademicDivision string    `json:"academicDivision" binding:"required"`
	Notes            string    `json:"notes"`
}

type PaymentUpdateRequest struct {
	PaymentStatus    string `json:"paymentStatus" binding:"required,oneof=pending paid cancelled"`
	PaymentMethod    string `json:"paymentMethod"`
	PaymentReference string `json:"paymentReference"`
}

type NotesUpdateRequest struct {
	Notes *string `json:"notes"`
}

// CreateBooking is the public registration endpoint.
func CreateBooking(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	booking := models.Booking{
		EventID:          req.EventID,
		Name:             req.Name,
		Phone:            req.Phone,
		Email:            req.Email,
		NationalID:       req.NationalID,
		AcademicYear:     req.AcademicYear,
		AcademicDivision: req.AcademicDivision,
		Notes:            req.Notes,
	}

	bookings := repository.NewBookingRepository(middleware.GetDB(c))
	if err := bookings.Create(c.Request.Context(), &booking); err != nil {
		switch err {
		case repository.ErrEventNotFound:
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found or not available")
		case repository.ErrRegistrationClosed:
			helpers.RespondWithError(c, http.StatusBadRequest, "Registration is closed for this event")
		case repository.ErrEventFull:
			helpers.RespondWithError(c, http.StatusBadRequest, "Event is full")
		case repository.ErrDuplicateBooking:
			helpers.RespondWithError(c, http.StatusBadRequest, "You have already registered for this event")
		default:
			log.Error().Err(err).Msg("failed to create booking")
			helpers.RespondWithDetail(c, http.StatusInternalServerError, "Error creating booking", err)
		}
		return
	}

	helpers.RespondWithData(c, http.StatusCreated, "Event booking successful", booking)
}

// ListBookings returns all bookings, optionally filtered by ?eventId and
// ?paymentStatus, newest first.
func ListBookings(c *gin.Context) {
	var filter repository.ListFilter
	if raw := c.Query("eventId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID")
			return
		}
		filter.EventID = id
	}
	filter.PaymentStatus = c.Query("paymentStatus")

	bookings := repository.NewBookingRepository(middleware.GetDB(c))
	result, err := bookings.List(c.Request.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")
		helpers.RespondWithDetail(c, http.StatusInternalServerError, "Error fetching bookings", err)
		return
	}
	helpers.RespondWithData(c, http.StatusOK, "", result)
}

func GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	bookings := repository.NewBookingRepository(middleware.GetDB(c))
	booking, err := bookings.GetByID(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}
	helpers.RespondWithData(c, http.StatusOK, "", booking)
}

func UpdateBookingPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var req PaymentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid payment status")
		return
	}

	bookings := repository.NewBookingRepository(middleware.GetDB(c))
	booking, err := bookings.UpdatePayment(c.Request.Context(), id, req.PaymentStatus, req.PaymentMethod, req.PaymentReference)
	if err != nil {
		switch err {
		case repository.ErrBookingNotFound:
			helpers.RespondWithError(c, http.StatusNotFound, "Booking not found")
		case repository.ErrInvalidPaymentStatus:
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid payment status")
		default:
			log.Error().Err(err).Msg("failed to update booking payment")
			helpers.RespondWithDetail(c, http.StatusInternalServerError, "Error updating booking", err)
		}
		return
	}

	helpers.RespondWithData(c, http.StatusOK, "Booking payment status updated", booking)
}

func UpdateBookingNotes(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var req NotesUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	bookings := repository.NewBookingRepository(middleware.GetDB(c))
	booking, err := bookings.UpdateNotes(c.Request.Context(), id, req.Notes)
	if err != nil {
		if err == repository.ErrBookingNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Booking not found")
			return
		}
		log.Error().Err(err).Msg("failed to update booking notes")
		helpers.RespondWithDetail(c, http.StatusInternalServerError, "Error updating booking", err)
		return
	}

	helpers.RespondWithData(c, http.StatusOK, "Booking notes updated", booking)
}

func DeleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	bookings := repository.NewBookingRepository(middleware.GetDB(c))
	if err := bookings.Delete(c.Request.Context(), id); err != nil {
		if err == repository.ErrBookingNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Booking not found")
			return
		}
		log.Error().Err(err).Msg("failed to delete booking")
		helpers.RespondWithDetail(c, http.StatusInternalServerError, "Error deleting booking", err)
		return
	}

	helpers.RespondWithData(c, http.StatusOK, "Booking deleted successfully", nil)
}
