package migration

import (
	"errors"
	"fmt"
	"log"

	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Category{}); err != nil {
		log.Fatalf("Error migrating category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeCategory{}); err != nil {
		log.Fatalf("Error migrating recipe category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserConnection{}); err != nil {
		log.Fatalf("Error migrating user connection database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserLikesRecipe{}); err != nil {
		log.Fatalf("Error migrating like database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserRatesRecipe{}); err != nil {
		log.Fatalf("Error migrating rating database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserFinishedRecipe{}); err != nil {
		log.Fatalf("Error migrating finished recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserWorkingOnRecipe{}); err != nil {
		log.Fatalf("Error migrating working on recipe database: %v", err)
		return err
	}

	if err := seedAdminUser(db); err != nil {
		log.Fatalf("Error seeding admin user: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

// seedAdminUser creates the configured admin account once. Reruns of the
// migration leave an existing admin untouched.
func seedAdminUser(db *gorm.DB) error {
	username := utils.GetConfig("ADMIN_USERNAME")
	password := utils.GetConfig("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return nil
	}

	var existing entities.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := entities.User{
		Name:     "Administrator",
		Username: username,
		Password: string(hashed),
		Admin:    true,
	}
	return db.Create(&admin).Error
}
