package inquiry

import (
	"context"
	"testing"

	"github.com/batyskurylys/catalog-service/internal/domain"
	"github.com/batyskurylys/catalog-service/internal/mailer"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRequestRepo struct {
	nextID  int64
	rows    []domain.Request
	failure error
}

func (f *fakeRequestRepo) Create(_ context.Context, req *domain.Request) error {
	if f.failure != nil {
		return f.failure
	}
	f.nextID++
	req.ID = f.nextID
	f.rows = append(f.rows, *req)
	return nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id int64) (*domain.Request, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			return &f.rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRequestRepo) List(_ context.Context) ([]domain.Request, error) {
	return f.rows, nil
}

type recordingNotifier struct {
	calls []mailer.Notification
}

func (r *recordingNotifier) Notify(n mailer.Notification) {
	r.calls = append(r.calls, n)
}

func TestSubmitPersistsAndNotifies(t *testing.T) {
	repo := &fakeRequestRepo{nextID: 40}
	notifier := &recordingNotifier{}
	svc := NewService(repo, notifier)

	items := []domain.ItemSnapshot{{ID: 5, Name: "Winch", Price: 120.0}}
	id, err := svc.Submit(context.Background(), Contact{Name: "Ivan", Phone: "+7123"}, items)
	require.NoError(t, err)
	assert.Equal(t, int64(41), id)

	require.Len(t, repo.rows, 1)
	assert.Equal(t, "Ivan", repo.rows[0].CustomerName)
	assert.Equal(t, "+7123", repo.rows[0].CustomerPhone)
	assert.JSONEq(t, `[{"id":5,"name":"Winch","price":120}]`, repo.rows[0].ProductList)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, int64(41), notifier.calls[0].RequestID)
	assert.Equal(t, "Ivan", notifier.calls[0].CustomerName)
	assert.Equal(t, "+7123", notifier.calls[0].CustomerPhone)
	assert.Equal(t, items, notifier.calls[0].Items)
}

func TestSubmitAcceptsEmptyItemList(t *testing.T) {
	repo := &fakeRequestRepo{}
	notifier := &recordingNotifier{}
	svc := NewService(repo, notifier)

	id, err := svc.Submit(context.Background(), Contact{Name: "Ivan", Phone: "+7123"}, nil)
	require.NoError(t, err)

	view, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, view.ProductList)
	assert.NotNil(t, view.ProductList)
}

func TestSubmitCreateFailureSchedulesNoNotification(t *testing.T) {
	repo := &fakeRequestRepo{failure: errors.New("connection refused")}
	notifier := &recordingNotifier{}
	svc := NewService(repo, notifier)

	_, err := svc.Submit(context.Background(), Contact{Name: "Ivan", Phone: "+7123"}, nil)
	require.Error(t, err)
	assert.Empty(t, notifier.calls)
}

func TestGetRoundTripsSubmittedItems(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := NewService(repo, &recordingNotifier{})

	items := []domain.ItemSnapshot{
		{ID: 5, Name: "Winch", Price: 120.0},
		{ID: 7, Name: "Shackle", Price: 4.25},
	}
	id, err := svc.Submit(context.Background(), Contact{Name: "Ivan", Phone: "+7123"}, items)
	require.NoError(t, err)

	view, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, view.ID)
	assert.Equal(t, "Ivan", view.CustomerName)
	assert.Equal(t, "+7123", view.CustomerPhone)
	assert.Equal(t, items, view.ProductList)
}

func TestGetCorruptStoredListDegradesToEmpty(t *testing.T) {
	repo := &fakeRequestRepo{rows: []domain.Request{
		{ID: 1, CustomerName: "Ivan", CustomerPhone: "+7123", ProductList: "{broken"},
	}}
	svc := NewService(repo, &recordingNotifier{})

	view, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, view.ProductList)
	assert.Empty(t, view.ProductList)
}

func TestGetMissingRequest(t *testing.T) {
	svc := NewService(&fakeRequestRepo{}, &recordingNotifier{})

	_, err := svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListKeepsInsertionOrder(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := NewService(repo, &recordingNotifier{})

	for _, name := range []string{"first", "second", "third"} {
		_, err := svc.Submit(context.Background(), Contact{Name: name, Phone: "+7123"}, nil)
		require.NoError(t, err)
	}

	views, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "first", views[0].CustomerName)
	assert.Equal(t, "second", views[1].CustomerName)
	assert.Equal(t, "third", views[2].CustomerName)
}
