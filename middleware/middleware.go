package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/base/log"
	"github.com/x-xyz/salesbot/base/metrics"
)

// GoMiddleware represent the data-struct for middleware
type GoMiddleware struct {
	met metrics.Service
}

// InitMiddleware initialize the middleware
func InitMiddleware() *GoMiddleware {
	return &GoMiddleware{met: metrics.New("http")}
}

// AddContext puts a ctx.Ctx carrying the request id under "ctx"
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			cont := ctx.WithValue(ctx.Background(), "requestID", c.Response().Header().Get(echo.HeaderXRequestID))
			c.Set("ctx", cont)
			return next(c)
		}
	}
}

// GetCtx returns the request ctx, a background one when AddContext did not run
func GetCtx(c echo.Context) ctx.Ctx {
	if cont, ok := c.Get("ctx").(ctx.Ctx); ok {
		return cont
	}
	return ctx.Background()
}

// ResponseLogger logs response for every request
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer m.met.BumpTime("request.time", "method", c.Request().Method, "path", c.Path()).End()

			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := log.Fields{
				"ms":         time.Since(start).Seconds() * 1000,
				"httpStatus": res.Status,
				"remoteIP":   c.RealIP(),
				"uri":        req.URL.Path,
				"httpMethod": req.Method,
				"size":       res.Size,
				"userAgent":  req.UserAgent(),
			}
			if res.Status >= 400 {
				fields["nextErr"] = err
			}

			// probes hit /healthz every few seconds
			l := GetCtx(c).WithFields(fields)
			if res.Status < 400 {
				l.Debug("response")
			} else {
				l.Info("response")
			}
			return nil
		}
	}
}
