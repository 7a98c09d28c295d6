package webserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
)

type apiError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Detail  interface{} `json:"detail,omitempty"`
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return c.JSON(status, map[string]interface{}{
		"error": apiError{Code: code, Message: message, Detail: detail},
	})
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// parsePagination reads optional page/pageSize query parameters, tolerating
// junk values the way storefront clients tend to send them.
func parsePagination(c echo.Context) (page, pageSize int) {
	page = cast.ToInt(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	pageSize = cast.ToInt(c.QueryParam("pageSize"))
	if pageSize < 1 || pageSize > 500 {
		pageSize = 100
	}
	return page, pageSize
}
