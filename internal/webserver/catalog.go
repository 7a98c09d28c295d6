package webserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/batyskurylys/catalog-service/internal/domain"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type productPayload struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	PicURL      *string  `json:"pic_url"`
	Price       *float64 `json:"price"`
	CategoryID  *int64   `json:"category_id"`
}

func (s *WebServer) listCategories(c echo.Context) error {
	rows, err := s.categories.List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query categories", err.Error())
	}
	return ok(c, rows)
}

func (s *WebServer) listProducts(c echo.Context) error {
	rows, err := s.products.List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query products", err.Error())
	}
	return ok(c, rows)
}

func (s *WebServer) getProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid product ID", nil)
	}
	p, err := s.products.GetByID(c.Request().Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	} else if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query product", err.Error())
	}
	return ok(c, p)
}

func (s *WebServer) listProductsByCategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid category ID", nil)
	}
	// A category with no products is an empty listing, never an error.
	rows, err := s.products.ListByCategory(c.Request().Context(), id)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query products", err.Error())
	}
	return ok(c, rows)
}

func (s *WebServer) createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Unable to parse product", err.Error())
	}
	if payload.Name == nil || strings.TrimSpace(*payload.Name) == "" {
		return fail(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Name is required", nil)
	}
	if payload.Price == nil {
		return fail(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Price is required", nil)
	}
	if *payload.Price < 0 {
		return fail(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Price must be non-negative", nil)
	}

	p := domain.Product{
		Name:        strings.TrimSpace(*payload.Name),
		Description: payload.Description,
		PicURL:      payload.PicURL,
		Price:       *payload.Price,
		CategoryID:  payload.CategoryID,
	}
	if err := s.products.Create(c.Request().Context(), &p); err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create product", err.Error())
	}
	return created(c, p)
}

func (s *WebServer) updateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid product ID", nil)
	}

	// Bound as a raw map so an absent field and an explicit null stay
	// distinguishable: a key bound to nil clears the nullable column.
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return fail(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Unable to parse product", err.Error())
	}

	// Only supplied fields change; everything else keeps its stored value.
	patch := map[string]interface{}{}
	for key, value := range fields {
		switch key {
		case "name":
			name, isString := value.(string)
			if !isString || strings.TrimSpace(name) == "" {
				return fail(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Name must not be empty", nil)
			}
			patch["name"] = strings.TrimSpace(name)
		case "description", "pic_url":
			if value == nil {
				patch[key] = nil
				continue
			}
			text, isString := value.(string)
			if !isString {
				return fail(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Field must be a string", nil)
			}
			patch[key] = text
		case "price":
			price, isNumber := value.(float64)
			if !isNumber || price < 0 {
				return fail(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Price must be non-negative", nil)
			}
			patch["price"] = price
		case "category_id":
			if value == nil {
				patch["category_id"] = nil
				continue
			}
			raw, isNumber := value.(float64)
			if !isNumber {
				return fail(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Category ID must be a number", nil)
			}
			patch["category_id"] = int64(raw)
		}
	}

	p, err := s.products.Update(c.Request().Context(), id, patch)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	} else if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update product", err.Error())
	}
	return ok(c, p)
}
