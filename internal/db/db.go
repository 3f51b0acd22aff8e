// Package db owns the database connection, schema migration and seed data.
package db

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/solifood/foodlink/internal/config"
	"github.com/solifood/foodlink/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the PostgreSQL connection with a few retries so the server
// survives a database that is still starting up.
func Connect(dbCfg config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var conn *gorm.DB
	var err error
	for i := 0; i < 10; i++ {
		conn, err = gorm.Open(postgres.Open(dbCfg.DSN()), cfg)
		if err == nil {
			break
		}
		fmt.Println("Retrying DB connection...", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database after retries: %w", err)
	}
	if pingErr := conn.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}
	return conn, nil
}

// Migrate creates/updates the schema for every entity. Join tables get
// composite primary keys, which doubles as the unique constraint closing the
// duplicate-association race at the database level.
func Migrate(conn *gorm.DB) error {
	toMigrate := []interface{}{
		&models.Role{}, &models.User{},
		&models.EventType{}, &models.Event{},
		&models.Category{}, &models.Food{},
		&models.Location{}, &models.Company{}, &models.Shop{},
		&models.Warehouse{}, &models.Storage{},
		&models.Vehicle{},
		&models.Package{}, &models.Demand{}, &models.Collect{}, &models.Delivery{},
		&models.Ticket{},
	}
	for _, m := range toMigrate {
		if err := conn.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	for _, table := range []string{"users", "roles", "user_is_role"} {
		if !conn.Migrator().HasTable(table) {
			return errors.New("missing table after migration: " + table)
		}
	}
	return nil
}

// Seed inserts the fixed reference data. Role ids are load-bearing: id 1 is
// the administrator role checked by allow-lists and self-or-admin rules.
func Seed(conn *gorm.DB) error {
	roles := []models.Role{
		{ID: 1, Name: "administrator"},
		{ID: 2, Name: "volunteer"},
		{ID: 3, Name: "driver"},
		{ID: 4, Name: "shopkeeper"},
	}
	for _, role := range roles {
		var existing models.Role
		if err := conn.Where("id = ?", role.ID).First(&existing).Error; errors.Is(err, gorm.ErrRecordNotFound) {
			if err := conn.Create(&role).Error; err != nil {
				return fmt.Errorf("seed role %q: %w", role.Name, err)
			}
		}
	}

	eventTypes := []models.EventType{
		{Name: "collection day"},
		{Name: "distribution"},
		{Name: "awareness campaign"},
	}
	for _, et := range eventTypes {
		var existing models.EventType
		if err := conn.Where("name = ?", et.Name).First(&existing).Error; errors.Is(err, gorm.ErrRecordNotFound) {
			if err := conn.Create(&et).Error; err != nil {
				return fmt.Errorf("seed event type %q: %w", et.Name, err)
			}
		}
	}

	categories := []models.Category{
		{Name: "dry goods"},
		{Name: "dairy"},
		{Name: "produce"},
		{Name: "canned"},
	}
	for _, cat := range categories {
		var existing models.Category
		if err := conn.Where("name = ?", cat.Name).First(&existing).Error; errors.Is(err, gorm.ErrRecordNotFound) {
			if err := conn.Create(&cat).Error; err != nil {
				return fmt.Errorf("seed category %q: %w", cat.Name, err)
			}
		}
	}
	return nil
}
