package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mhmdhisham/eventgate/internal/helpers"
	"github.com/mhmdhisham/eventgate/internal/middleware"
	"github.com/mhmdhisham/eventgate/internal/models"
	"github.com/mhmdhisham/eventgate/internal/repository"
)

type EventRequest struct {
	Title           string    `json:"title" binding:"required"`
	MainTitle       string    `json:"mainTitle" binding:"required"`
	Description     string    `json:"description" binding:"required"`
	Date            string    `json:"date" binding:"required"`
	EventDate       time.Time `json:"eventDate" binding:"required"`
	LocationEvent   string    `json:"locationEvent"`
	Image           string    `json:"image"`
	Link            string    `json:"link"`
	IsUpcoming      *bool     `json:"isUpcoming"`
	MaxParticipants *int      `json:"maxParticipants"`
	RegistrationFee float64   `json:"registrationFee" binding:"gte=0"`
}

// EventOwner is the resolved owning account shown on dashboard listings.
type EventOwner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EventView is the wire shape of an event. The lifecycle tag is exposed as
// the isActive boolean the frontend already speaks.
type EventView struct {
	models.Event
	IsActive  bool        `json:"isActive"`
	CreatedBy *EventOwner `json:"createdBy,omitempty"`
}

func newEventView(event models.Event, withOwner bool) EventView {
	view := EventView{
		Event:    event,
		IsActive: event.IsActive(),
	}
	if withOwner && event.CreatedBy != nil {
		view.CreatedBy = &EventOwner{Name: event.CreatedBy.Name, Email: event.CreatedBy.Email}
	}
	return view
}

func newEventViews(events []models.Event, withOwner bool) []EventView {
	views := make([]EventView, 0, len(events))
	for _, event := range events {
		views = append(views, newEventView(event, withOwner))
	}
	return views
}

// ListEvents is the public listing: active events only, ?type=upcoming|past.
func ListEvents(c *gin.Context) {
	events := repository.NewEventRepository(middleware.GetDB(c))
	result, err := events.ListPublic(c.Request.Context(), c.Query("type"))
	if err != nil {
		log.Error().Err(err).Msg("failed to list events")
		helpers.RespondWithDetail(c, http.StatusInternalServerError, "Error fetching events", err)
		return
	}
	helpers.RespondWithData(c, http.StatusOK, "", newEventViews(result, false))
}

func GetEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID")
		return
	}

	events := repository.NewEventRepository(middleware.GetDB(c))
	event, err := events.GetByID(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found")
		return
	}
	helpers.RespondWithData(c, http.StatusOK, "", newEventView(*event, false))
}

func CreateEvent(c *gin.Context) {
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

	helpers.RespondWithData(c, http.StatusCreated, "Event created successfully", newEventView(event, false))
}

func UpdateEvent(c *gin.Context) {
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
	event, err := events.Update(c.Request.Context(), id, patch)
	if err != nil {
		if err == repository.ErrEventNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found")
			return
		}
		log.Error().Err(err).Msg("failed to update event")
		helpers.RespondWithDetail(c, http.StatusInternalServerError, "Error updating event", err)
		return
	}

	helpers.RespondWithData(c, http.StatusOK, "Event updated successfully", newEventView(*event, false))
}

// DeleteEvent retires the event; bookings against it stay listable.
func DeleteEvent(c *gin.Context) {
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

	helpers.RespondWithData(c, http.StatusOK, "Event deleted successfully", nil)
}

func GetEventBookings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
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
