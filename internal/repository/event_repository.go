package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mhmdhisham/eventgate/internal/models"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// EventPatch is the allow-list of operator-patchable fields. Identity, owner
// and timestamps are deliberately absent: a client payload can never reach
// them. Nil means "field not supplied".
type EventPatch struct {
	Title           *string    `json:"title"`
	MainTitle       *string    `json:"mainTitle"`
	Description     *string    `json:"description"`
	Date            *string    `json:"date"`
	LocationEvent   *string    `json:"locationEvent"`
	Image           *string    `json:"image"`
	Link            *string    `json:"link"`
	EventDate       *time.Time `json:"eventDate"`
	IsUpcoming      *bool      `json:"isUpcoming"`
	MaxParticipants *int       `json:"maxParticipants"`
	RegistrationFee *float64   `json:"registrationFee"`
}

func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *EventRepository) Update(ctx context.Context, id uuid.UUID, patch EventPatch) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return nil, ErrEventNotFound
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.MainTitle != nil {
		updates["main_title"] = *patch.MainTitle
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Date != nil {
		updates["date"] = *patch.Date
	}
	if patch.LocationEvent != nil {
		updates["location_event"] = *patch.LocationEvent
	}
	if patch.Image != nil {
		updates["image"] = *patch.Image
	}
	if patch.Link != nil {
		updates["link"] = *patch.Link
	}
	if patch.EventDate != nil {
		updates["event_date"] = *patch.EventDate
	}
	if patch.IsUpcoming != nil {
		updates["is_upcoming"] = *patch.IsUpcoming
	}
	if patch.MaxParticipants != nil {
		updates["max_participants"] = *patch.MaxParticipants
	}
	if patch.RegistrationFee != nil {
		updates["registration_fee"] = *patch.RegistrationFee
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&event).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// Retire hides the event from public listings. The record and any bookings
// against it are kept.
func (r *EventRepository) Retire(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", id).
		Update("status", models.EventStatusRetired)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

// ListPublic returns active events only, newest event date first.
// typeFilter is "upcoming", "past" or anything else for all.
func (r *EventRepository) ListPublic(ctx context.Context, typeFilter string) ([]models.Event, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("status = ?", models.EventStatusActive)

	switch typeFilter {
	case "upcoming":
		query = query.Where("is_upcoming = ?", true)
	case "past":
		query = query.Where("is_upcoming = ?", false)
	}

	var events []models.Event
	if err := query.Order("event_date DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// ListDashboard includes retired events and resolves the owning account,
// newest created first.
func (r *EventRepository) ListDashboard(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Order("created_at DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetByID returns the event regardless of status; retired events stay
// addressable for audit and for already-created bookings.
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return nil, ErrEventNotFound
	}
	return &event, nil
}
