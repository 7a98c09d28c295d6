package app

import (
	"github.com/batyskurylys/catalog-service/internal/domain"
	"go.uber.org/zap"
)

// checkCategories seeds the default storefront categories when the table is
// empty. Categories are otherwise created only by admin writes.
func (a *Application) checkCategories() {
	defaultCategories := []domain.Category{
		{Name: "Building Materials"},
		{Name: "Tools"},
		{Name: "Electrical"},
		{Name: "Plumbing"},
	}

	var count int64
	a.gormDB.Model(&domain.Category{}).Count(&count)
	if count > 0 {
		return
	}

	for _, cat := range defaultCategories {
		if err := a.gormDB.Create(&cat).Error; err != nil {
			zap.L().Error("failed to create default category",
				zap.String("name", cat.Name),
				zap.Error(err))
		} else {
			zap.L().Info("initialized default category", zap.String("name", cat.Name))
		}
	}
}
