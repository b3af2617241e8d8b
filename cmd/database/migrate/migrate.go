package migration

import (
	"fmt"
	"log"

	"pantryplanner/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Household{}); err != nil {
		log.Fatalf("Error migrating household database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.HouseholdMember{}); err != nil {
		log.Fatalf("Error migrating household member database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.HouseholdInvite{}); err != nil {
		log.Fatalf("Error migrating household invite database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.HouseholdSettings{}); err != nil {
		log.Fatalf("Error migrating household settings database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PantryItem{}); err != nil {
		log.Fatalf("Error migrating pantry item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PantryLocation{}); err != nil {
		log.Fatalf("Error migrating pantry location database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeIngredient{}); err != nil {
		log.Fatalf("Error migrating recipe ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MealPlan{}); err != nil {
		log.Fatalf("Error migrating meal plan database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ManualShoppingItem{}); err != nil {
		log.Fatalf("Error migrating manual shopping item database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
