package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"warehouse.GO/api"
)

func init() {
	api.RegisterModule(RegisterDashboardRoutes)
}

func RegisterDashboardRoutes(apiGroup *echo.Group, d *api.Deps) {
	g := apiGroup.Group("/dashboard")

	g.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, d.Dashboard.Summary())
	})

	g.POST("/refresh", func(c echo.Context) error {
		return c.JSON(http.StatusOK, d.Dashboard.Refresh())
	})
}
