package app

import (
	"os"

	"github.com/batyskurylys/catalog-service/config"
	"github.com/batyskurylys/catalog-service/internal/domain"
	"github.com/batyskurylys/catalog-service/internal/mailer"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/gorm"
)

type Application struct {
	appConfig *config.AppConfig
	gormDB    *gorm.DB
	sched     *cron.Cron
	notifier  *mailer.Dispatcher
}

// Ensure Application implements all interfaces
var (
	_ DBProvider        = (*Application)(nil)
	_ ConfigProvider    = (*Application)(nil)
	_ NotifierProvider  = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) DB() *gorm.DB {
	return a.gormDB
}

// OverrideDB replaces the application's database handle (used in tests).
func (a *Application) OverrideDB(db *gorm.DB) {
	a.gormDB = db
}

// Notifier returns the notification dispatcher.
func (a *Application) Notifier() mailer.Notifier {
	return a.notifier
}

// Scheduler returns the cron scheduler
func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

// Init brings the application up: logging, database connection and schema,
// seed data, the notification dispatcher and background jobs. Every resource
// is owned by this instance and released by Release; there is no
// process-global state beyond the zap logger.
func (a *Application) Init() error {
	cfg := a.appConfig

	a.initLogger(cfg.Logger)

	db, err := getDatabase(cfg.Database)
	if err != nil {
		return errors.Wrap(err, "connect database")
	}
	a.gormDB = db
	zap.S().Infof("database connection successful, host: %s", cfg.Database.Host)

	if err := a.MigrateDB(cfg.Database.Debug); err != nil {
		return errors.Wrap(err, "migrate database")
	}

	a.checkCategories()

	a.notifier = mailer.NewDispatcher(cfg.Smtp)
	a.notifier.Start()

	a.initJob()
	return nil
}

func (a *Application) initLogger(cfg config.LoggerConfig) {
	var zapConfig zap.Config
	if cfg.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stdout"}

	var logger *zap.Logger
	if cfg.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller())
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller())
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

func (a *Application) MigrateDB(track bool) error {
	if track {
		return a.gormDB.Debug().Migrator().AutoMigrate(domain.Tables...)
	}
	return a.gormDB.Migrator().AutoMigrate(domain.Tables...)
}

func (a *Application) DropAll() {
	_ = a.gormDB.Migrator().DropTable(domain.Tables...)
}

// InitDb recreates the schema from scratch and reseeds it.
func (a *Application) InitDb() {
	_ = a.gormDB.Migrator().DropTable(domain.Tables...)
	if err := a.gormDB.Migrator().AutoMigrate(domain.Tables...); err != nil {
		zap.S().Error(err)
		return
	}
	a.checkCategories()
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.notifier != nil {
		a.notifier.Stop()
	}
	_ = zap.L().Sync()
}
