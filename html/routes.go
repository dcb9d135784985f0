package html

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"warehouse.GO/api"
)

func init() {
	api.RegisterHTMLModule(RegisterHTMLRoutes)
}

// RegisterHTMLRoutes registers the dashboard and the record table pages.
func RegisterHTMLRoutes(e *echo.Echo, d *api.Deps) {
	e.GET("/", func(c echo.Context) error {
		return c.Render(http.StatusOK, "dashboard.html", DashboardPage(d.Dashboard.Summary()))
	})

	e.GET("/records/:domain", func(c echo.Context) error {
		page, err := RecordsPage(d.Records, c.Param("domain"), c.QueryParam("q"))
		if err != nil {
			log.Println("Page error:", err)
			return c.String(http.StatusNotFound, "Page not found")
		}
		return c.Render(http.StatusOK, "records.html", page)
	})
}
