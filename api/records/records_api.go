package records

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"warehouse.GO/api"
	recordService "warehouse.GO/service/records"
	"warehouse.GO/service/spreadsheet"
)

func init() {
	api.RegisterModule(RegisterRecordRoutes)
}

// RegisterRecordRoutes mounts the CRUD, import and export routes of every domain under /api/<domain>.
func RegisterRecordRoutes(g *echo.Group, d *api.Deps) {
	set := d.Records
	registerDomain(g, set.Inbound)
	registerDomain(g, set.Inventory)
	registerDomain(g, set.Outbound)
	registerDomain(g, set.Suppliers)
	registerDomain(g, set.Clients)
}

func registerDomain[T any](apiGroup *echo.Group, m *recordService.Module[T]) {
	g := apiGroup.Group("/" + m.Name())

	// GET /api/<domain>?q=: list, filtered by search term
	g.GET("", func(c echo.Context) error {
		items := m.Store.Search(c.QueryParam("q"))
		return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
	})

	g.GET("/export", func(c echo.Context) error {
		format, err := spreadsheet.ParseFormat(c.QueryParam("format"))
		if err != nil {
			return api.Error(c, err)
		}
		sheet := m.Export(c.QueryParam("q"))
		data, err := spreadsheet.Bytes(sheet, format)
		if err != nil {
			return api.Error(c, err)
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(sheet.FileName(format))))
		return c.Blob(http.StatusOK, spreadsheet.ContentType(format), data)
	})

	// POST /api/<domain>/import: multipart "file", optional "mode" (replace|merge)
	g.POST("/import", func(c echo.Context) error {
		start := time.Now()
		mode, err := recordService.ParseMode(c.FormValue("mode"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		fh, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "file is required"})
		}
		format, err := spreadsheet.FormatOf(fh.Filename)
		if err != nil {
			return api.Error(c, err)
		}
		f, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		defer f.Close()

		res, err := m.ImportReader(c.Request().Context(), f, format, mode)
		duration := time.Since(start).Milliseconds()
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, res)
	})

	g.GET("/:key", func(c echo.Context) error {
		rec, ok := m.Store.Get(c.Param("key"))
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
		}
		return c.JSON(http.StatusOK, rec)
	})

	g.POST("", func(c echo.Context) error {
		var rec T
		if err := bindBody(c, &rec); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		saved, err := m.Create(c.Request().Context(), rec)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusCreated, saved)
	})

	g.PUT("/:key", func(c echo.Context) error {
		key := c.Param("key")
		var rec T
		if err := bindBody(c, &rec); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if m.Store.Key(rec) == "" {
			m.Store.AssignKey(&rec, key)
		}
		if m.Store.Key(rec) != key {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "key in body must match the URL"})
		}
		saved, err := m.Save(c.Request().Context(), rec)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, saved)
	})

	// DELETE /api/<domain>/:key?confirm=true: deletion must be confirmed by the caller
	g.DELETE("/:key", func(c echo.Context) error {
		if ok, _ := strconv.ParseBool(c.QueryParam("confirm")); !ok {
			return c.JSON(http.StatusPreconditionRequired, echo.Map{"error": "add ?confirm=true to delete"})
		}
		if err := m.Delete(c.Request().Context(), c.Param("key")); err != nil {
			return api.Error(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}

// bindBody binds only the request body, so the :key path param cannot leak into the record.
func bindBody(c echo.Context, v interface{}) error {
	return (&echo.DefaultBinder{}).BindBody(c, v)
}
