package stock

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"warehouse.GO/api"
	stockService "warehouse.GO/service/stock"
)

func init() {
	api.RegisterModule(RegisterStockRoutes)
}

func RegisterStockRoutes(apiGroup *echo.Group, d *api.Deps) {
	g := apiGroup.Group("/stock")

	// POST /api/stock/adjust: move physical stock in or out of one inventory line
	g.POST("/adjust", func(c echo.Context) error {
		start := time.Now()

		var body struct {
			Code      string `json:"code"`
			Quantity  int    `json:"quantity"`
			Direction string `json:"direction"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.Code == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "code is required"})
		}
		dir, err := stockService.ParseDirection(body.Direction)
		if err != nil {
			return api.Error(c, err)
		}

		rec, err := stockService.Adjust(c.Request().Context(), d.Records.Inventory.Store, body.Code, body.Quantity, dir)
		duration := time.Since(start).Milliseconds()
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"item":                rec,
			"request_duration_ms": duration,
		})
	})
}
