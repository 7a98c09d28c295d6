package app

import (
	"time"

	"github.com/batyskurylys/catalog-service/config"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// getDatabase opens the pooled postgres connection used by every store
// operation. Foreign key constraints are not emitted at migration time:
// product.category_id is a weak reference and may dangle without error.
func getDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	level := logger.Warn
	if cfg.Debug {
		level = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:                                   logger.Default.LogMode(level),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "access connection pool")
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConn)
	sqlDB.SetMaxIdleConns(cfg.IdleConn)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
