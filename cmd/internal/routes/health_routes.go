package routes

import (
	"context"
	"net/http"
	"patientsapi/cmd/internal/utils/apierror"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type DefaultHealthRoute struct {
	DB Pinger
}

func NewHealthDefault(db Pinger) *DefaultHealthRoute {
	return &DefaultHealthRoute{DB: db}
}

func (h *DefaultHealthRoute) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"msg": "Welcome to Patients & Appointments API."})
}

func (h *DefaultHealthRoute) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.PingContext(ctx); err != nil {
		log.Errorf("database ping failed: %v", err)
		apierr := apierror.DatabaseUnavailableError
		return c.JSON(apierr.Code(), apierr)
	}
	return c.String(http.StatusOK, "ok")
}
