// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/barrelhouse/liquorstore-backend/internal/config"
	"github.com/barrelhouse/liquorstore-backend/internal/models"
)

var DB *gorm.DB

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var err error
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	// Connect to database
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return DB, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	// Enable UUID extension
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		return fmt.Errorf("failed to create UUID extension: %w", err)
	}

	// Run auto-migrations
	err := db.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create indexes
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)",
		"CREATE INDEX IF NOT EXISTS idx_products_featured ON products(featured) WHERE featured",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)",
		"CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_product ON order_items(product_id)",

		// Full-text search index for catalog search
		"CREATE INDEX IF NOT EXISTS idx_products_search ON products USING GIN(to_tsvector('english', name || ' ' || description))",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// Seed initial data
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	var productCount int64
	db.Model(&models.Product{}).Count(&productCount)
	if productCount > 0 {
		return nil
	}

	seedProducts := []models.Product{
		{
			Name:        "Highland Single Malt 12yr",
			Description: "Aged twelve years in ex-bourbon casks. Honey, heather, and a long oak finish.",
			Price:       54.99,
			Category:    "Whiskey",
			ImageURL:    "/images/highland-12.jpg",
			Quantity:    24,
			InStock:     true,
			Featured:    true,
			Tags:        []string{"scotch", "single-malt"},
		},
		{
			Name:        "Small Batch Reposado",
			Description: "Rested six months in American oak. Agave-forward with vanilla and white pepper.",
			Price:       39.99,
			Category:    "Tequila",
			ImageURL:    "/images/reposado.jpg",
			Quantity:    36,
			InStock:     true,
			Featured:    false,
			Tags:        []string{"agave"},
		},
		{
			Name:        "Coastal Dry Gin",
			Description: "Juniper, samphire, and citrus peel distilled in small copper stills.",
			Price:       32.50,
			Category:    "Gin",
			ImageURL:    "/images/coastal-gin.jpg",
			Quantity:    0,
			InStock:     false,
			Featured:    false,
		},
	}

	for _, product := range seedProducts {
		if err := db.Create(&product).Error; err != nil {
			log.Printf("Warning: Failed to seed product %s: %v", product.Name, err)
		}
	}

	log.Println("Initial data seeding completed")
	return nil
}

// BackfillLegacyOrders assigns the legacy user marker to orders created
// before user identity was recorded. One-off maintenance, safe to re-run.
func BackfillLegacyOrders(db *gorm.DB) error {
	return WithTransaction(db, func(tx *gorm.DB) error {
		result := tx.Model(&models.Order{}).
			Where("user_id IS NULL OR user_id = ''").
			Update("user_id", models.LegacyUserID)
		if result.Error != nil {
			return fmt.Errorf("failed to backfill legacy orders: %w", result.Error)
		}

		if result.RowsAffected > 0 {
			log.Printf("Backfilled %d legacy orders", result.RowsAffected)
		}
		return nil
	})
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
