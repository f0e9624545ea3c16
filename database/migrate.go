package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/blocktrace/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DBConnection represents a database connection
type DBConnection struct {
	DB     *gorm.DB
	Name   string
	DbURL  string
	Models []interface{}
}

// NewDBConnection creates a new database connection
func NewDBConnection(name, dbURL string) (*DBConnection, error) {
	if dbURL == "" {
		return nil, errors.New("database URL cannot be empty")
	}

	// Configure GORM logger
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	// Connect to database
	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %v", name, err)
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB for %s: %v", name, err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Printf("Connected to %s database", name)

	// Models in FK dependency order so bulk inserts never hit a missing parent
	migratable := []interface{}{
		&models.User{},
		&models.Model{},
		&models.Block{},
		&models.Requirement{},
		&models.Link{},
		&models.ModelShare{},
		&models.Diagram{},
		&models.DiagramBlock{},
	}

	return &DBConnection{
		DB:     db,
		Name:   name,
		DbURL:  dbURL,
		Models: migratable,
	}, nil
}

// Migrate migrates the database schema
func (c *DBConnection) Migrate() error {
	log.Printf("Migrating %s database schema...", c.Name)
	err := c.DB.AutoMigrate(c.Models...)
	if err != nil {
		return fmt.Errorf("failed to migrate %s database: %v", c.Name, err)
	}
	log.Printf("%s database schema migrated", c.Name)
	return nil
}

// MigrateDataBetweenDatabases copies all rows from source to target, table by
// table in FK order. The target is assumed empty.
func MigrateDataBetweenDatabases(source, target *DBConnection) error {
	log.Println("Starting data migration from source to target...")

	if err := copyTable[models.User](source, target, "users"); err != nil {
		return err
	}
	if err := copyTable[models.Model](source, target, "models"); err != nil {
		return err
	}
	if err := copyTable[models.Block](source, target, "blocks"); err != nil {
		return err
	}
	if err := copyTable[models.Requirement](source, target, "requirements"); err != nil {
		return err
	}
	if err := copyTable[models.Link](source, target, "links"); err != nil {
		return err
	}
	if err := copyTable[models.ModelShare](source, target, "shares"); err != nil {
		return err
	}
	if err := copyTable[models.Diagram](source, target, "diagrams"); err != nil {
		return err
	}
	if err := copyTable[models.DiagramBlock](source, target, "diagram placements"); err != nil {
		return err
	}

	log.Println("Data migration completed successfully!")
	return nil
}

func copyTable[T any](source, target *DBConnection, label string) error {
	var rows []T
	if err := source.DB.Find(&rows).Error; err != nil {
		return fmt.Errorf("failed to fetch %s: %v", label, err)
	}
	log.Printf("Found %d %s to migrate", len(rows), label)
	if len(rows) == 0 {
		return nil
	}
	if err := target.DB.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to migrate %s: %v", label, err)
	}
	return nil
}
