package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JC-Quero/gym-tracker/internal/entity"
)

// writeError maps the error taxonomy onto HTTP responses. Anything outside
// the taxonomy is a server fault.
func writeError(c echo.Context, err error) error {
	var validationErr *entity.ValidationError
	var integrityErr *entity.ReferentialIntegrityError
	var notFoundErr *entity.NotFoundError
	var authErr *entity.AuthenticationError

	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": validationErr.Error(), "field": validationErr.Field})
	case errors.As(err, &integrityErr):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": integrityErr.Error()})
	case errors.As(err, &notFoundErr):
		return c.JSON(http.StatusNotFound, echo.Map{"error": notFoundErr.Error()})
	case errors.As(err, &authErr):
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": authErr.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}
