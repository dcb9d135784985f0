// Package custom shows how to extend the server and CLI from init(): a GraphQL
// extension, a CLI command, a cron job and an HTTP route, all reporting understocked parts.
package custom

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sort"
	"sync/atomic"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"warehouse.GO/api"
	"warehouse.GO/cmd"
	"warehouse.GO/cron"
	"warehouse.GO/graphql"
	gqlregistry "warehouse.GO/graphql/registry"
	inventoryEntity "warehouse.GO/model/entity/inventory"
	"warehouse.GO/service/records"
)

// Shortage is an inventory line whose physical stock is below ERP.
type Shortage struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Missing int    `json:"missing"`
}

// Understock lists shortages, largest first.
func Understock(set *records.Set) []Shortage {
	var out []Shortage
	for _, r := range set.Inventory.Store.List() {
		if r.Physical < r.ERP {
			out = append(out, shortage(r))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Missing > out[j].Missing })
	return out
}

func shortage(r inventoryEntity.Record) Shortage {
	return Shortage{Code: r.Code, Name: r.Name, Missing: r.ERP - r.Physical}
}

// served is the record set of the running HTTP server, if one is up.
var served atomic.Pointer[records.Set]

// logUnderstock logs the shortage count. Outside the server it opens the
// configured storage itself.
func logUnderstock(...string) {
	set := served.Load()
	if set == nil {
		opened, closeFn, err := cmd.OpenRecords(context.Background())
		if err != nil {
			log.Printf("understock: %v", err)
			return
		}
		defer func() {
			if err := closeFn(); err != nil {
				log.Printf("understock: close storage: %v", err)
			}
		}()
		set = opened
	}
	shortages := Understock(set)
	missing := 0
	for _, s := range shortages {
		missing += s.Missing
	}
	log.Printf("understock: %d parts below ERP, %d units missing", len(shortages), missing)
}

func init() {
	// GraphQL extension: _extension(name: "understock")
	gqlregistry.Register("understock", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		set := graphql.RecordsFromContext(ctx)
		if set == nil {
			return nil, fmt.Errorf("understock: no records in context")
		}
		return Understock(set), nil
	})

	// CLI command
	cmd.Register(&cobra.Command{
		Use:   "custom:understock",
		Short: "List parts whose physical stock is below ERP",
		RunE: func(c *cobra.Command, args []string) (err error) {
			set, closeFn, err := cmd.OpenRecords(c.Context())
			if err != nil {
				return err
			}
			defer cmd.CloseRecords(closeFn, &err)
			for _, s := range Understock(set) {
				fmt.Fprintf(c.OutOrStdout(), "%s %s: %d 부족\n", s.Code, s.Name, s.Missing)
			}
			return nil
		},
	})

	// Cron job
	cron.Register("understock", "@every 1h", logUnderstock)

	// HTTP route
	api.RegisterRoute(func(e *echo.Echo, d *api.Deps) {
		served.Store(d.Records)
		e.GET("/custom/understock", func(c echo.Context) error {
			return c.JSON(http.StatusOK, Understock(d.Records))
		})
	})
}
