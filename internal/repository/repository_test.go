package repository

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mhmdhisham/eventgate/internal/models"
)

// setupTestDB opens a dedicated in-memory database per test. The pool is
// capped at one connection so concurrent test writers serialize instead of
// tripping over sqlite table locks.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&models.User{}, &models.Event{}, &models.Booking{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func createTestEvent(t *testing.T, db *gorm.DB, mutate func(*models.Event)) *models.Event {
	t.Helper()

	event := &models.Event{
		Title:           "Tech Summit",
		MainTitle:       "Annual Tech Summit",
		Description:     "A full day of talks.",
		Date:            "15 March 2026",
		EventDate:       time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
		LocationEvent:   "Main Hall",
		IsUpcoming:      true,
		Status:          models.EventStatusActive,
		RegistrationFee: 50,
	}
	if mutate != nil {
		mutate(event)
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("failed to create test event: %v", err)
	}
	return event
}

func testBooking(event *models.Event, nationalID string) *models.Booking {
	return &models.Booking{
		EventID:          event.ID,
		Name:             "Sara Adel",
		Phone:            "01000000000",
		Email:            "sara@example.com",
		NationalID:       nationalID,
		AcademicYear:     "3rd",
		AcademicDivision: "CS",
	}
}
