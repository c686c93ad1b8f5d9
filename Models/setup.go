package Models

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// ConnectDataBase opens (creating if absent) the clinic's local SQLite file,
// migrates the schema and seeds the default rows.
func ConnectDataBase() (*gorm.DB, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using defaults")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "jiale_clinic.db"
	}

	return OpenDataBase(dbPath)
}

func OpenDataBase(dbPath string) (*gorm.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", dbPath)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// First migrate models with no dependencies
	if err := db.AutoMigrate(&User{}, &Therapist{}, &Treatment{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	// Then models that reference the above
	if err := db.AutoMigrate(&Appointment{}); err != nil {
		return nil, fmt.Errorf("migrate appointments: %w", err)
	}

	if err := seedDefaults(db); err != nil {
		return nil, fmt.Errorf("seed defaults: %w", err)
	}

	return db, nil
}

// seedDefaults inserts the two fixed accounts and the treatment catalog.
// Users are checked individually by username; treatments are seeded only
// when the table is completely empty.
func seedDefaults(db *gorm.DB) error {
	users := []User{
		{Username: "jiale", Password: "jiale", Name: "管理員", Role: RoleAdmin},
		{Username: "staff", Password: "staff", Name: "櫃檯人員", Role: RoleStaff},
	}
	for _, user := range users {
		var count int64
		if err := db.Model(&User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := user.BeforeSave(); err != nil {
			return err
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}

	var count int64
	if err := db.Model(&Treatment{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		treatments := []Treatment{
			{Name: "徒手治療", Price: 1200, DurationMinutes: 30},
			{Name: "震波治療", Price: 2000, DurationMinutes: 20},
			{Name: "一般復健", Price: 200, DurationMinutes: 60},
		}
		if err := db.Create(&treatments).Error; err != nil {
			return err
		}
	}

	return nil
}
