package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"artspace_backend/internals/configs"
	"artspace_backend/internals/constants"
	artistModel "artspace_backend/internals/features/artists/model"
	artworkModel "artspace_backend/internals/features/artworks/model"
	exhibitionModel "artspace_backend/internals/features/exhibitions/model"
	ticketModel "artspace_backend/internals/features/tickets/model"
	roleModel "artspace_backend/internals/features/users/role/model"
	userModel "artspace_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] connecting to PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "disable")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=artspace&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // safe with PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] DB connection failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
}

// Migrate creates the schema and seeds the two well-known roles.
func Migrate() {
	if err := DB.AutoMigrate(
		&roleModel.RoleModel{},
		&userModel.UserModel{},
		&artistModel.ArtistModel{},
		&artworkModel.ArtworkModel{},
		&exhibitionModel.ExhibitionModel{},
		&ticketModel.TicketModel{},
	); err != nil {
		log.Fatalf("[ERROR] migration failed: %v", err)
	}

	seedRoles()
}

func seedRoles() {
	seed := []roleModel.RoleModel{
		{Title: constants.RoleAdmin, Description: "Full administrative access"},
		{Title: constants.RoleUser, Description: "Registered gallery visitor"},
	}
	for i := range seed {
		if err := DB.Where("title = ?", seed[i].Title).
			FirstOrCreate(&seed[i]).Error; err != nil {
			log.Printf("[ERROR] seeding role %s: %v", seed[i].Title, err)
		}
	}
}
