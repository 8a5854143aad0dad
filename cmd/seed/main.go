package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shloksagar/backend/database"
	"github.com/shloksagar/backend/model"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Initialize database connection using GORM
	store, err := database.StartGORM()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	separator := strings.Repeat("=", 60)
	fmt.Println(separator)
	fmt.Println("ShlokSagar - Database Seeding")
	fmt.Println(separator)

	if err := store.Seed(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	// Promote the configured admin account if it exists
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail != "" {
		gormDB := store.GetDB().(*gorm.DB)
		result := gormDB.Model(&model.User{}).
			Where("email = ?", adminEmail).
			Update("role", "admin")
		if result.Error != nil {
			log.Fatalf("Failed to promote admin user: %v", result.Error)
		}
		if result.RowsAffected == 0 {
			fmt.Printf("No account for %s yet; it will need promoting after first sign-in.\n", adminEmail)
		} else {
			fmt.Printf("Promoted %s to admin.\n", adminEmail)
		}
	}

	fmt.Println("Seeding completed successfully.")
}
