package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"warehouse.GO/core/registry"
	partnerEntity "warehouse.GO/model/entity/partner"
	"warehouse.GO/service/dashboard"
	"warehouse.GO/service/records"
	"warehouse.GO/service/spreadsheet"
	"warehouse.GO/service/stock"
	"warehouse.GO/service/store"
)

// Deps is what route modules receive: the record set and the dashboard built at start-up.
type Deps struct {
	Records   *records.Set
	Dashboard *dashboard.Service
}

// --- /api group modules (JSON) ---

// ModuleFunc registers routes on the /api group.
type ModuleFunc func(g *echo.Group, d *Deps)

// RegisterModule registers an API module. Call from init() in API packages.
func RegisterModule(fn ModuleFunc) {
	registry.Append(registry.GlobalRegistry, registry.KeyRegistryAPI, fn)
}

// ApplyModules calls all registered /api modules. Locks the registry.
func ApplyModules(g *echo.Group, d *Deps) {
	for _, fn := range registry.List[ModuleFunc](registry.GlobalRegistry, registry.KeyRegistryAPI) {
		fn(g, d)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryAPI)
}

// --- Root-level routes (health, HTML, GraphQL, custom) ---

// RouteFunc registers routes on the root Echo instance.
type RouteFunc func(e *echo.Echo, d *Deps)

// RegisterRoute registers a root-level route module. Call from init().
func RegisterRoute(fn RouteFunc) {
	registry.Append(registry.GlobalRegistry, registry.KeyRegistryRoutes, fn)
}

// RegisterGET is shorthand for registering a simple GET route on root.
func RegisterGET(path string, handler echo.HandlerFunc) {
	RegisterRoute(func(e *echo.Echo, _ *Deps) {
		e.GET(path, handler)
	})
}

// RegisterHTMLModule registers an HTML route module (alias for RegisterRoute).
func RegisterHTMLModule(fn RouteFunc) {
	RegisterRoute(fn)
}

// ApplyRoutes calls all registered root-level routes. Locks the registry.
func ApplyRoutes(e *echo.Echo, d *Deps) {
	for _, fn := range registry.List[RouteFunc](registry.GlobalRegistry, registry.KeyRegistryRoutes) {
		fn(e, d)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryRoutes)
}

// StatusOf maps service errors to HTTP status codes.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, store.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrMissingKey), errors.Is(err, store.ErrKeyChanged),
		errors.Is(err, partnerEntity.ErrInvalid),
		errors.Is(err, stock.ErrInvalidQuantity), errors.Is(err, stock.ErrDirection),
		errors.Is(err, spreadsheet.ErrUnreadable), errors.Is(err, spreadsheet.ErrUnsupported):
		return http.StatusBadRequest
	case errors.Is(err, stock.ErrInsufficientStock):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// Error writes err as {"error": ...} with the status from StatusOf.
func Error(c echo.Context, err error) error {
	return c.JSON(StatusOf(err), echo.Map{"error": err.Error()})
}
