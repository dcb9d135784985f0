// Standalone GraphQL server. Run with: go run ./cmd/graphql
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"warehouse.GO/api"
	_ "warehouse.GO/api/graphql"
	"warehouse.GO/cmd"
	"warehouse.GO/config"
	"warehouse.GO/core/cache"
	"warehouse.GO/service/dashboard"
)

func main() {
	_ = godotenv.Load()
	config.LoadAppConfig()

	set, closeFn, err := cmd.OpenRecords(context.Background())
	if err != nil {
		log.Fatal("storage:", err)
	}
	defer closeFn()

	e := echo.New()
	e.HideBanner = true
	api.ApplyRoutes(e, &api.Deps{Records: set, Dashboard: dashboard.New(set, cache.NewCache(), 0)})

	// ASCII banner on start (random font each run)
	gqlFonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "univers", "doom", "larry3d", "puffy", "rectangles", "bigchief", "cosmic"}
	fig := figure.NewFigure("Warehouse GQL ->", gqlFonts[rand.Intn(len(gqlFonts))], true)
	fig.Print()
	fmt.Println("Standalone GraphQL server")

	port := config.AppConfig.Port
	log.Printf("GraphQL at http://localhost:%s/graphql  Playground at http://localhost:%s/playground", port, port)
	e.Logger.Fatal(e.Start(":" + port))
}
