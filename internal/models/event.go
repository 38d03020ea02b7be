package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventStatus is the lifecycle tag for an event. Retired events stay
// addressable by id but are hidden from public listings.
type EventStatus string

const (
	EventStatusActive  EventStatus = "active"
	EventStatusRetired EventStatus = "retired"
)

type Event struct {
	ID              uuid.UUID   `gorm:"type:uuid;primary_key" json:"id"`
	Title           string      `gorm:"not null" json:"title"`
	MainTitle       string      `gorm:"not null" json:"mainTitle"`
	Description     string      `gorm:"not null" json:"description"`
	Date            string      `gorm:"not null" json:"date"`
	LocationEvent   string      `gorm:"not null;default:'Online'" json:"locationEvent"`
	Image           string      `json:"image"`
	Link            string      `json:"link"`
	EventDate       time.Time   `gorm:"not null" json:"eventDate"`
	IsUpcoming      bool        `gorm:"not null;default:true" json:"isUpcoming"`
	Status          EventStatus `gorm:"not null;default:'active'" json:"-"`
	MaxParticipants *int        `json:"maxParticipants"`
	RegistrationFee float64     `gorm:"not null;default:0" json:"registrationFee"`
	CreatedByID     uuid.UUID   `gorm:"type:uuid" json:"-"`
	CreatedBy       *User       `gorm:"foreignKey:CreatedByID" json:"-"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}

func (event *Event) IsActive() bool {
	return event.Status == EventStatusActive
}
