package webserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/batyskurylys/catalog-service/internal/domain"
	"github.com/batyskurylys/catalog-service/internal/inquiry"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type inquiryItem struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type inquiryPayload struct {
	Contact struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	} `json:"contact"`
	Items []inquiryItem `json:"items"`
}

func (s *WebServer) submitRequest(c echo.Context) error {
	var payload inquiryPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Unable to parse request", err.Error())
	}
	if strings.TrimSpace(payload.Contact.Name) == "" {
		return fail(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Contact name is required", nil)
	}
	if strings.TrimSpace(payload.Contact.Phone) == "" {
		return fail(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Contact phone is required", nil)
	}

	items := make([]domain.ItemSnapshot, 0, len(payload.Items))
	for _, it := range payload.Items {
		items = append(items, domain.ItemSnapshot{ID: it.ID, Name: it.Name, Price: it.Price})
	}

	id, err := s.inquiries.Submit(c.Request().Context(), inquiry.Contact{
		Name:  payload.Contact.Name,
		Phone: payload.Contact.Phone,
	}, items)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to store request", err.Error())
	}

	return created(c, map[string]interface{}{"status": "ok", "id": id})
}

func (s *WebServer) listRequests(c echo.Context) error {
	views, err := s.inquiries.List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query requests", err.Error())
	}
	// The admin frontend pages through history; plain GETs see everything.
	if c.QueryParam("pageSize") != "" {
		page, pageSize := parsePagination(c)
		start := (page - 1) * pageSize
		if start >= len(views) {
			return ok(c, []inquiry.RequestView{})
		}
		end := start + pageSize
		if end > len(views) {
			end = len(views)
		}
		views = views[start:end]
	}
	return ok(c, views)
}

func (s *WebServer) getRequest(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request ID", nil)
	}
	view, err := s.inquiries.Get(c.Request().Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Request not found", nil)
	} else if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query request", err.Error())
	}
	return ok(c, view)
}
