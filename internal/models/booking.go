package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusPaid      = "paid"
	PaymentStatusCancelled = "cancelled"
)

// Booking is one person's registration for an event. The composite unique
// index on (event_id, national_id) is the durable duplicate guard; the
// application-level pre-check alone would lose a race between concurrent
// submissions.
type Booking struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	EventID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_event_national" json:"eventId"`
	Event            *Event     `gorm:"foreignKey:EventID" json:"event,omitempty"`
	Name             string     `gorm:"not null" json:"name"`
	Phone            string     `gorm:"not null" json:"phone"`
	Email            string     `gorm:"not null" json:"email"`
	NationalID       string     `gorm:"not null;uniqueIndex:idx_event_national" json:"nationalId"`
	AcademicYear     string     `gorm:"not null" json:"academicYear"`
	AcademicDivision string     `gorm:"not null" json:"academicDivision"`
	Notes            string     `json:"notes"`
	PaymentStatus    string     `gorm:"not null;default:'pending'" json:"paymentStatus"`
	PaymentAmount    float64    `gorm:"not null;default:0" json:"paymentAmount"`
	PaymentMethod    string     `json:"paymentMethod"`
	PaymentReference string     `json:"paymentReference"`
	PaymentDate      *time.Time `json:"paymentDate"`
	IsConfirmed      bool       `gorm:"not null;default:false" json:"isConfirmed"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func (booking *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	return
}
