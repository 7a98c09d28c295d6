package webserver

import (
	"net/http"
	"testing"

	"github.com/batyskurylys/catalog-service/config"
	"github.com/batyskurylys/catalog-service/internal/domain"
	"github.com/batyskurylys/catalog-service/internal/inquiry"
	"github.com/batyskurylys/catalog-service/internal/mailer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAndFetchRequest(t *testing.T) {
	s := newTestServer(&fakeCategoryRepo{}, newFakeProductRepo(), &inMemoryRequestRepo{})

	rec := doRequest(s, http.MethodPost, "/admin/request",
		`{"contact":{"name":"Ivan","phone":"+7123"},"items":[{"id":5,"name":"Winch","price":120.0}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"status":"ok","id":1}`, rec.Body.String())

	rec = doRequest(s, http.MethodGet, "/admin/requests/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"id": 1,
		"customer_name": "Ivan",
		"customer_phone": "+7123",
		"product_list": [{"id":5,"name":"Winch","price":120.0}]
	}`, rec.Body.String())
}

func TestSubmitRequestValidation(t *testing.T) {
	s := newTestServer(&fakeCategoryRepo{}, newFakeProductRepo(), &inMemoryRequestRepo{})

	for name, body := range map[string]string{
		"missing contact": `{"items":[]}`,
		"blank name":      `{"contact":{"name":" ","phone":"+7123"},"items":[]}`,
		"blank phone":     `{"contact":{"name":"Ivan","phone":""},"items":[]}`,
	} {
		rec := doRequest(s, http.MethodPost, "/admin/request", body)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, name)
	}
}

func TestSubmitRequestEmptyItems(t *testing.T) {
	s := newTestServer(&fakeCategoryRepo{}, newFakeProductRepo(), &inMemoryRequestRepo{})

	rec := doRequest(s, http.MethodPost, "/admin/request",
		`{"contact":{"name":"Ivan","phone":"+7123"},"items":[]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(s, http.MethodGet, "/admin/requests/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"customer_name":"Ivan","customer_phone":"+7123","product_list":[]}`, rec.Body.String())
}

func TestListRequests(t *testing.T) {
	requests := &inMemoryRequestRepo{rows: []domain.Request{
		{ID: 1, CustomerName: "Ivan", CustomerPhone: "+7123", ProductList: `[{"id":5,"name":"Winch","price":120}]`},
		{ID: 2, CustomerName: "Olga", CustomerPhone: "+7456", ProductList: "{corrupt"},
	}, nextID: 2}
	s := newTestServer(&fakeCategoryRepo{}, newFakeProductRepo(), requests)

	rec := doRequest(s, http.MethodGet, "/admin/requests", "")
	require.Equal(t, http.StatusOK, rec.Code)
	// The corrupt historical row degrades to an empty item list rather than
	// failing the whole listing.
	assert.JSONEq(t, `[
		{"id":1,"customer_name":"Ivan","customer_phone":"+7123","product_list":[{"id":5,"name":"Winch","price":120}]},
		{"id":2,"customer_name":"Olga","customer_phone":"+7456","product_list":[]}
	]`, rec.Body.String())
}

func TestListRequestsPaged(t *testing.T) {
	requests := &inMemoryRequestRepo{rows: []domain.Request{
		{ID: 1, CustomerName: "a", CustomerPhone: "1", ProductList: "[]"},
		{ID: 2, CustomerName: "b", CustomerPhone: "2", ProductList: "[]"},
		{ID: 3, CustomerName: "c", CustomerPhone: "3", ProductList: "[]"},
	}, nextID: 3}
	s := newTestServer(&fakeCategoryRepo{}, newFakeProductRepo(), requests)

	rec := doRequest(s, http.MethodGet, "/admin/requests?page=2&pageSize=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":3,"customer_name":"c","customer_phone":"3","product_list":[]}]`, rec.Body.String())

	rec = doRequest(s, http.MethodGet, "/admin/requests?page=9&pageSize=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestSubmitSucceedsWithUnconfiguredRelay(t *testing.T) {
	// A real dispatcher backed by an entirely absent relay config: the
	// submission still stores the request and reports success.
	dispatcher := mailer.NewDispatcher(config.SmtpConfig{})
	dispatcher.Start()
	defer dispatcher.Stop()

	s := &WebServer{
		categories: &fakeCategoryRepo{},
		products:   newFakeProductRepo(),
		inquiries:  inquiry.NewService(&inMemoryRequestRepo{}, dispatcher),
	}
	s.root = s.buildEcho()

	rec := doRequest(s, http.MethodPost, "/admin/request",
		`{"contact":{"name":"Ivan","phone":"+7123"},"items":[{"id":5,"name":"Winch","price":120.0}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"status":"ok","id":1}`, rec.Body.String())
}

func TestGetRequestMissingIs404(t *testing.T) {
	s := newTestServer(&fakeCategoryRepo{}, newFakeProductRepo(), &inMemoryRequestRepo{})
	rec := doRequest(s, http.MethodGet, "/admin/requests/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRequestNonNumericIDIs422(t *testing.T) {
	s := newTestServer(&fakeCategoryRepo{}, newFakeProductRepo(), &inMemoryRequestRepo{})
	rec := doRequest(s, http.MethodGet, "/admin/requests/abc", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
