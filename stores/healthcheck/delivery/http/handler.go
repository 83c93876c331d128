package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/salesbot/base/delivery"
	hcdomain "github.com/x-xyz/salesbot/domain/healthcheck"
	"github.com/x-xyz/salesbot/middleware"
)

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

// New will initialize the healthcheck/
func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	g := e.Group("/healthz")
	g.GET("", handler.check)
}

func (h *healthCheckHandler) check(c echo.Context) error {
	status, err := h.healthCheck.Check(middleware.GetCtx(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, status)
}
