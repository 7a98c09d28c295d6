package app

import (
	"github.com/batyskurylys/catalog-service/config"
	"github.com/batyskurylys/catalog-service/internal/mailer"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// NotifierProvider provides the notification dispatcher
type NotifierProvider interface {
	Notifier() mailer.Notifier
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application context.
// Services should depend on specific providers or this combined interface.
type AppContext interface {
	DBProvider
	ConfigProvider
	NotifierProvider
	SchedulerProvider

	// Application lifecycle methods
	MigrateDB(track bool) error
	InitDb()
	DropAll()
}
