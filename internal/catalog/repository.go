package catalog

import (
	"context"

	"github.com/batyskurylys/catalog-service/internal/domain"
	"gorm.io/gorm"
)

// CategoryRepository handles read access to categories
type CategoryRepository interface {
	// List retrieves all categories in insertion order
	List(ctx context.Context) ([]domain.Category, error)
}

// ProductRepository handles database operations for catalog products
type ProductRepository interface {
	// List retrieves all products with their category resolved
	List(ctx context.Context) ([]domain.Product, error)

	// GetByID retrieves a single product, gorm.ErrRecordNotFound when absent
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// ListByCategory retrieves products whose category_id matches. An empty
	// result is an empty slice, not an error.
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)

	// Create inserts a new product and fills in its assigned identity
	Create(ctx context.Context, p *domain.Product) error

	// Update applies a partial update: only the columns present in patch
	// change. Returns the updated row, gorm.ErrRecordNotFound when absent.
	Update(ctx context.Context, id int64, patch map[string]interface{}) (*domain.Product, error)
}

// GormCategoryRepository is the GORM implementation of CategoryRepository
type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows := make([]domain.Category, 0)
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

// GormProductRepository is the GORM implementation of ProductRepository
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows := make([]domain.Product, 0)
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *GormProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormProductRepository) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	rows := make([]domain.Product, 0)
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *GormProductRepository) Create(ctx context.Context, p *domain.Product) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return err
	}
	// Reload so the response carries the resolved category, if any.
	if p.CategoryID != nil {
		var cat domain.Category
		if err := r.db.WithContext(ctx).First(&cat, *p.CategoryID).Error; err == nil {
			p.Category = &cat
		}
	}
	return nil
}

func (r *GormProductRepository) Update(ctx context.Context, id int64, patch map[string]interface{}) (*domain.Product, error) {
	if len(patch) > 0 {
		res := r.db.WithContext(ctx).
			Model(&domain.Product{}).
			Where("id = ?", id).
			Updates(patch)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(ctx, id)
}
