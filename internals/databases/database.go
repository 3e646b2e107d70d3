package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	admissionModel "lagos_eoi_backend/internals/features/admissions/model"
	applicationModel "lagos_eoi_backend/internals/features/applications/model"
	contactModel "lagos_eoi_backend/internals/features/contact/model"
	posterModel "lagos_eoi_backend/internals/features/posters/model"
	settingModel "lagos_eoi_backend/internals/features/settings/model"
	userModel "lagos_eoi_backend/internals/features/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	// Full DSN + statement_timeout.
	// Note: behind PgBouncer keep PreferSimpleProtocol=true and point at the pooler port.
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=lagos_eoi&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		// duplicate keys must surface as gorm.ErrDuplicatedKey (phone / reference_id guard)
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ DB connect failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")

	if err := Migrate(DB); err != nil {
		log.Fatalf("❌ DB migrate failed: %v", err)
	}
}

// Migrate keeps the schema in step with the models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&applicationModel.ApplicationModel{},
		&contactModel.ContactMessageModel{},
		&settingModel.SiteSettingModel{},
		&admissionModel.ArmyAdmissionModel{},
		&posterModel.PosterModel{},
	)
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	// light touch so the pool is filled and ready
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
