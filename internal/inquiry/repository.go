package inquiry

import (
	"context"

	"github.com/batyskurylys/catalog-service/internal/domain"
	"gorm.io/gorm"
)

// RequestRepository handles database operations for customer inquiries
type RequestRepository interface {
	// Create inserts a new request row and fills in its assigned identity.
	// The row is written whole or not at all.
	Create(ctx context.Context, req *domain.Request) error

	// GetByID retrieves a request, gorm.ErrRecordNotFound when absent
	GetByID(ctx context.Context, id int64) (*domain.Request, error)

	// List retrieves all requests in insertion order
	List(ctx context.Context) ([]domain.Request, error)
}

// GormRequestRepository is the GORM implementation of RequestRepository
type GormRequestRepository struct {
	db *gorm.DB
}

func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

func (r *GormRequestRepository) Create(ctx context.Context, req *domain.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *GormRequestRepository) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	var req domain.Request
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *GormRequestRepository) List(ctx context.Context) ([]domain.Request, error) {
	rows := make([]domain.Request, 0)
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}
