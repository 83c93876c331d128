package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/x-xyz/salesbot/base/ctx"
	hcdomain "github.com/x-xyz/salesbot/domain/healthcheck"
	mmiddleware "github.com/x-xyz/salesbot/middleware"
	hcHandler "github.com/x-xyz/salesbot/stores/healthcheck/delivery/http"
)

func startEchoServer(c ctx.Ctx, address string, health hcdomain.HealthCheckUsecase) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.AddContext())
	e.Use(middL.ResponseLogger())

	hcHandler.New(e, health)

	c.WithField("address", address).Info("starting server")
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			c.WithField("err", err).Error("shutting down the server")
		}
	}()
	return e
}
