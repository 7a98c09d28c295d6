package app

import (
	"github.com/batyskurylys/catalog-service/internal/domain"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	a.sched = cron.New(cron.WithParser(cronParser))

	_, err := a.sched.AddFunc("@every 1h", func() {
		a.SchedCatalogStatsTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedCatalogStatsTask logs catalog and inquiry volumes so operators can see
// activity without querying the database.
func (a *Application) SchedCatalogStatsTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	var categories, products, requests int64
	a.gormDB.Model(&domain.Category{}).Count(&categories)
	a.gormDB.Model(&domain.Product{}).Count(&products)
	a.gormDB.Model(&domain.Request{}).Count(&requests)

	zap.L().Info("catalog stats",
		zap.Int64("categories", categories),
		zap.Int64("products", products),
		zap.Int64("requests", requests))
}
