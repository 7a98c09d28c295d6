package inquiry

import (
	"context"

	"github.com/batyskurylys/catalog-service/internal/domain"
	"github.com/batyskurylys/catalog-service/internal/mailer"
	"github.com/pkg/errors"
)

// Contact is the customer contact block of a submission. Non-empty name and
// phone are enforced by the API layer before they reach the service.
type Contact struct {
	Name  string
	Phone string
}

// RequestView is a request as served to API clients, with the stored item
// list decoded back into snapshots.
type RequestView struct {
	ID            int64                 `json:"id"`
	CustomerName  string                `json:"customer_name"`
	CustomerPhone string                `json:"customer_phone"`
	ProductList   []domain.ItemSnapshot `json:"product_list"`
}

// Service orchestrates inquiry submission: persist the request, then hand the
// admin notification to the dispatcher without blocking the caller.
type Service struct {
	repo     RequestRepository
	notifier mailer.Notifier
}

func NewService(repo RequestRepository, notifier mailer.Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Submit stores one inquiry and schedules its admin notification. The caller
// gets the new request id as soon as the write is durable; notification
// delivery happens out of band and can neither block nor fail the call. When
// the write fails no notification is scheduled.
func (s *Service) Submit(ctx context.Context, contact Contact, items []domain.ItemSnapshot) (int64, error) {
	encoded, err := EncodeItems(items)
	if err != nil {
		return 0, errors.Wrap(err, "encode item snapshots")
	}

	req := &domain.Request{
		CustomerName:  contact.Name,
		CustomerPhone: contact.Phone,
		ProductList:   encoded,
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return 0, errors.Wrap(err, "persist request")
	}

	s.notifier.Notify(mailer.Notification{
		RequestID:     req.ID,
		CustomerName:  contact.Name,
		CustomerPhone: contact.Phone,
		Items:         items,
	})

	return req.ID, nil
}

// Get returns one stored request with its item list decoded leniently.
func (s *Service) Get(ctx context.Context, id int64) (*RequestView, error) {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := viewOf(req)
	return &view, nil
}

// List returns all stored requests in insertion order.
func (s *Service) List(ctx context.Context) ([]RequestView, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]RequestView, 0, len(rows))
	for i := range rows {
		views = append(views, viewOf(&rows[i]))
	}
	return views, nil
}

func viewOf(req *domain.Request) RequestView {
	return RequestView{
		ID:            req.ID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		ProductList:   DecodeItems(req.ProductList),
	}
}
