package main

import (
	"log"
	"os"

	"noteshare-be/internal/model"
	"noteshare-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding Admin User...")
	seedAdmin(db)

	color.Cyan("Seeding Category Catalog...")
	seedCategories(db)

	color.Green("✅ Seeding completed!")
}

func seedAdmin(db *gorm.DB) {
	adminUsername := os.Getenv("SEED_ADMIN_USERNAME")
	if adminUsername == "" {
		adminUsername = "admin"
	}
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "ChangeMe123!"
		color.Yellow("Warning: SEED_ADMIN_PASSWORD not set, using default password")
	}

	var existing model.User
	if err := db.Where("username = ?", adminUsername).First(&existing).Error; err == nil {
		log.Printf("Admin user '%s' already exists, skipping...", adminUsername)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash admin password:", err)
	}

	admin := model.User{
		Id:               uuid.New(),
		Username:         adminUsername,
		Email:            adminUsername + "@noteshare.local",
		PasswordHash:     string(hash),
		Name:             "System",
		Surname:          "Administrator",
		IsActive:         true,
		IsAdmin:          true,
		ActivationGuid:   uuid.New(),
		ModifiedUsername: adminUsername,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Error: Failed to create admin user:", err)
	}
	log.Printf("Created admin user: %s", adminUsername)
}

func seedCategories(db *gorm.DB) {
	categories := []model.Category{
		{Id: uuid.New(), Title: "General", Description: "Notes that do not fit anywhere else", ModifiedUsername: "admin"},
		{Id: uuid.New(), Title: "Programming", Description: "Code snippets, language notes and tooling tips", ModifiedUsername: "admin"},
		{Id: uuid.New(), Title: "Science", Description: "Lecture notes and study material", ModifiedUsername: "admin"},
		{Id: uuid.New(), Title: "Travel", Description: "Trip plans, packing lists and travel journals", ModifiedUsername: "admin"},
		{Id: uuid.New(), Title: "Recipes", Description: "Cooking notes and recipes worth sharing", ModifiedUsername: "admin"},
	}

	for _, c := range categories {
		var existing model.Category
		if err := db.Where("title = ?", c.Title).First(&existing).Error; err == nil {
			log.Printf("Category '%s' already exists, skipping...", c.Title)
			continue
		}

		if err := db.Create(&c).Error; err != nil {
			log.Printf("Error creating category '%s': %v", c.Title, err)
		} else {
			log.Printf("Created category: %s", c.Title)
		}
	}
}
