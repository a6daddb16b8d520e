package routes

import (
	"patientsapi/cmd/internal/utils/apierror"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

func parseID(c echo.Context) (int, apierror.ErrorResponse) {
	raw := strings.TrimSpace(c.Param("id"))
	if raw == "" {
		return 0, apierror.NewMissingParamError("id")
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apierror.NewInvalidParamTypeError("id", "integer")
	}
	return id, nil
}
