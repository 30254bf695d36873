package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/delegends/barber-api/internal/config"
	"github.com/delegends/barber-api/internal/models"
)

// NewDB opens the store handle passed into every service at startup.
// An unreachable database is fatal: a handler tree without persistence
// cannot degrade gracefully, so we fail fast instead of limping along.
func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		zap.L().Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		zap.L().Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Salon{},
		&models.Barber{},
		&models.Service{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		zap.L().Fatal("failed to migrate", zap.Error(err))
	}

	return db
}
