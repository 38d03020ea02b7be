package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/mhmdhisham/eventgate/config"
	"github.com/mhmdhisham/eventgate/internal/models"
	"github.com/mhmdhisham/eventgate/internal/repository"
)

// Seeds a verified admin account. Usage:
//
//	createadmin [email] [password] [name]
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := godotenv.Load(".env"); err != nil {
		log.Warn().Msg("no .env file found, relying on environment")
	}

	email := "admin@eventgate.local"
	password := "admin123"
	name := "Admin User"
	if len(os.Args) > 1 {
		email = os.Args[1]
	}
	if len(os.Args) > 2 {
		password = os.Args[2]
	}
	if len(os.Args) > 3 {
		name = os.Args[3]
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	email = repository.NormalizeEmail(email)

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Info().Str("email", email).Msg("admin user already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	admin := models.User{
		Name:       name,
		Email:      email,
		Password:   string(hashed),
		Role:       models.RoleAdmin,
		IsVerified: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to create admin user")
	}

	log.Info().Str("email", admin.Email).Msg("admin user created, change the password after first login")
}
