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

// The dashboard surface mirrors the event and booking operations but
// responds to mutations with the refreshed dashboard event list, so the
// frontend table can re-render without a second round trip.

func dashboardEventList(c *gin.Context) ([]EventView, error) {
	events := repository.NewEventRepository(middleware.GetDB(c))
	result, err := events.ListDashboard(c.Request.Context())
	if err != nil {
		return nil, err
	}
	return newEventViews(result, true), nil
}

func DashboardEvents(c *gin.Context) {
	views, err := dashboardEventList(c)
	if err != nil {
		log.Error().Err(err).Msg("failed to list dashboard events")
		helpers.RespondWithDetail(c, http.StatusInternalServerError, "Error fetching events", err)
		return
	}
	helpers.RespondWithData(c, http.StatusOK, "", views)
}

func DashboardCreateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "No token provided, authorization denied")
		return
	}

	event := models.Event{
		Title:           req.Title,
		MainTitle:       req.MainTitle,
		Description:     req.Description,
		Date:            req.Date,
		EventDate:       req.EventDate,
		LocationEvent:   req.LocationEvent,
		Image:           req.Image,
		Link:            req.Link,
		IsUpcoming:      true,
		Status:          models.EventStatusActive,
		MaxParticipants: req.MaxParticipants,
		RegistrationFee: req.RegistrationFee,
		CreatedByID:     user.ID,
	}
	if event.LocationEvent == "" {
		event.LocationEvent = "Online"
	}
	if req.IsUpcoming != nil {
		event.IsUpcoming = *req.IsUpcoming
	}

	events := repository.NewEventRepository(middleware.GetDB(c))
	if err := events.Create(c.Request.Context(), &event); err != nil {
		log.Error().Err(err).Msg("failed to create event")
		helpers.RespondWithDetail(c, http.StatusInternalServerError, "Error creating event", err)
		return
	}

	views, err := dashboardEventList(c)
	if err != nil {
		log.Error().Err(err).Msg("failed to list dashboard events")
		helpers.RespondWithDetail(c, http.StatusInternalServerError, "Error fetching events", err)
		return
	}
	helpers.RespondWithData(c, http.StatusCreated, "Event created successfully", views)
}

func DashboardUpdateEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID")
		return
	}

	var patch repository.EventPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	events := repository.NewEventRepository(middleware.GetDB(c))
	if _, err := events.Update(c.Request.Context(), id, patch); err != nil {
		if err == repository.ErrEventNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found")
			return
		}
		log.Error().Err(err).Msg("failed to update event")
		helpers.RespondWithDetail(c, http.StatusInternalServerError, "Error updating event", err)
		return
	}

	views, err := dashboardEventList(c)
	if err != nil {
		log.Error().Err(err).Msg("failed to list dashboard events")
		helpers.RespondWithDetail(c, http.StatusInternalServerError, "Error fetching events", err)
		return
	}
	helpers.RespondWithData(c, http.StatusOK, "Event updated successfully", views)
}

func DashboardDeleteEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID")
		return
	}

	events := repository.NewEventRepository(middleware.GetDB(c))
	if err := events.Retire(c.Request.Context(), id); err != nil {
		if err == repository.ErrEventNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found")
			return
		}
		log.Error().Err(err).Msg("failed to delete event")
		helpers.RespondWithDetail(c, http.StatusInternalServerError, "Error deleting event", err)
		return
	}

	views, err := dashboardEventList(c)
	if err != nil {
		log.Error().Err(err).Msg("failed to list dashboard events")
		helpers.RespondWithDetail(c, http.StatusInternalServerError, "Error fetching events", err)
		return
	}
	helpers.RespondWithData(c, http.StatusOK, "Event deleted successfully", views)
}

// DashboardEventBookings lists bookings for the event in the path.
func DashboardEventBookings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID")
		return
	}

	bookings := repository.NewBookingRepository(middleware.GetDB(c))
	result, err := bookings.ListForEvent(c.Request.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("failed to list event bookings")
		helpers.RespondWithDetail(c, http.StatusInternalServerError, "Error fetching bookings", err)
		return
	}
	helpers.RespondWithData(c, http.StatusOK, "", result)
}
