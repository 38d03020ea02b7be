package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mhmdhisham/eventgate/internal/models"
)

// BookingRepository gates creation and mutation of bookings against event
// rules: capacity, duplicate identity, and the payment lifecycle.
type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create admits one registration inside a single transaction:
// event must exist and be active, registration must still be open, the
// pending+paid count must be under the capacity when one is set, and the
// (event, national id) pair must be unused. The capacity check is
// check-then-act; the composite unique index backs the duplicate check, so a
// constraint violation from a racing duplicate also surfaces as
// ErrDuplicateBooking.
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.First(&event, "id = ?", booking.EventID).Error; err != nil {
			return ErrEventNotFound
		}
		if event.Status != models.EventStatusActive {
			return ErrEventNotFound
		}
		if !event.IsUpcoming {
			return ErrRegistrationClosed
		}

		if event.MaxParticipants != nil {
			var count int64
			err := tx.Model(&models.Booking{}).
				Where("event_id = ? AND payment_status IN ?", event.ID,
					[]string{models.PaymentStatusPending, models.PaymentStatusPaid}).
				Count(&count).Error
			if err != nil {
				return err
			}
			if count >= int64(*event.MaxParticipants) {
				return ErrEventFull
			}
		}

		var existing models.Booking
		err := tx.Where("event_id = ? AND national_id = ?", event.ID, booking.NationalID).
			First(&existing).Error
		if err == nil {
			return ErrDuplicateBooking
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		booking.Email = NormalizeEmail(booking.Email)
		booking.PaymentAmount = event.RegistrationFee
		if event.RegistrationFee == 0 {
			booking.PaymentStatus = models.PaymentStatusPaid
		} else {
			booking.PaymentStatus = models.PaymentStatusPending
		}

		if err := tx.Create(booking).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateBooking
			}
			return err
		}
		return nil
	})
}

// UpdatePayment moves a booking through the payment lifecycle. Transitioning
// to paid stamps the payment date and confirms the booking in the same
// update; pending and cancelled never touch either field.
func (r *BookingRepository) UpdatePayment(ctx context.Context, id uuid.UUID, status, method, reference string) (*models.Booking, error) {
	switch status {
	case models.PaymentStatusPending, models.PaymentStatusPaid, models.PaymentStatusCancelled:
	default:
		return nil, ErrInvalidPaymentStatus
	}

	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		return nil, ErrBookingNotFound
	}

	updates := map[string]interface{}{
		"payment_status": status,
	}
	if method != "" {
		updates["payment_method"] = method
	}
	if reference != "" {
		updates["payment_reference"] = reference
	}
	if status == models.PaymentStatusPaid {
		updates["payment_date"] = time.Now()
		updates["is_confirmed"] = true
	}

	if err := r.db.WithContext(ctx).Model(&booking).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateNotes replaces notes only when the caller supplied the field; a nil
// pointer means "not provided" and leaves the stored notes untouched.
func (r *BookingRepository) UpdateNotes(ctx context.Context, id uuid.UUID, notes *string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		return nil, ErrBookingNotFound
	}

	if notes != nil {
		if err := r.db.WithContext(ctx).Model(&booking).Update("notes", *notes).Error; err != nil {
			return nil, err
		}
		booking.Notes = *notes
	}
	return &booking, nil
}

// Delete is a hard delete.
func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Booking{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// ListFilter narrows List output; zero values mean no filtering.
type ListFilter struct {
	EventID       uuid.UUID
	PaymentStatus string
}

func (r *BookingRepository) List(ctx context.Context, filter ListFilter) ([]models.Booking, error) {
	query := r.db.WithContext(ctx).Model(&models.Booking{}).Preload("Event")
	if filter.EventID != uuid.Nil {
		query = query.Where("event_id = ?", filter.EventID)
	}
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", filter.PaymentStatus)
	}

	var bookings []models.Booking
	if err := query.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) ListForEvent(ctx context.Context, eventID uuid.UUID) ([]models.Booking, error) {
	return r.List(ctx, ListFilter{EventID: eventID})
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).Preload("Event").First(&booking, "id = ?", id).Error; err != nil {
		return nil, ErrBookingNotFound
	}
	return &booking, nil
}
