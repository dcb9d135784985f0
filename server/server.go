// Package server assembles the HTTP server from the registered API, GraphQL and HTML modules.
package server

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"warehouse.GO/api"
	_ "warehouse.GO/api/dashboard"
	_ "warehouse.GO/api/graphql"
	_ "warehouse.GO/api/records"
	_ "warehouse.GO/api/stock"
	"warehouse.GO/html"
)

func init() {
	api.RegisterGET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
}

// New returns an Echo instance with middleware, the template renderer and every registered route.
func New(d *api.Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			log.Printf("Request duration: %d ms", duration)
			return err
		}
	})

	e.Renderer = html.NewTemplate()

	apiGroup := e.Group("/api")
	api.ApplyModules(apiGroup, d)
	api.ApplyRoutes(e, d)
	return e
}
