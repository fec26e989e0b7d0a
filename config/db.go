package config

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"registration/domain"
)

// BootDB opens the configured store, applies migrations and seeds the
// starter subjects. The returned gorm.DB wraps a pooled sql.DB shared by
// all requests; each call checks a connection out for its own statements.
func BootDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(cfg.DBPath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&domain.Student{},
		&domain.Subject{},
		&domain.StudentSubject{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return seedSubjects(db)
}

var starterSubjects = []string{"Mathematics", "Physics", "Chemistry", "Biology", "History"}

// seedSubjects inserts the starter set only when the table is empty. A name
// conflict from a racing seeder is ignored rather than surfaced.
func seedSubjects(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Subject{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count subjects: %w", err)
	}
	if count > 0 {
		return nil
	}

	subjects := make([]domain.Subject, 0, len(starterSubjects))
	for _, name := range starterSubjects {
		subjects = append(subjects, domain.Subject{Name: name})
	}

	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&subjects).Error
	if err != nil {
		return fmt.Errorf("failed to seed subjects: %w", err)
	}
	return nil
}
