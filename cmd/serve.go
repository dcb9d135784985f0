package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"warehouse.GO/api"
	"warehouse.GO/config"
	"warehouse.GO/core/cache"
	"warehouse.GO/cron"
	"warehouse.GO/server"
	"warehouse.GO/service/dashboard"
)

var (
	servePort    string
	serveNoCron  bool
	serveNoBanner bool
)

var bannerFonts = []string{"banner", "big", "block", "slant", "standard", "small", "doom", "larry3d", "puffy", "rectangles"}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server (JSON API, GraphQL and HTML pages)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Serve(cmd.Context())
	},
}

// Serve opens storage, starts the dashboard refresh scheduler and serves HTTP until interrupted.
func Serve(ctx context.Context) (err error) {
	config.LoadAppConfig()
	set, closeFn, err := OpenRecords(ctx)
	if err != nil {
		return err
	}
	defer CloseRecords(closeFn, &err)

	dash := dashboard.New(set, cache.NewCache(), 0)
	if !serveNoCron {
		c, err := cron.StartCron(cron.Builtin(config.AppConfig.DashboardRefresh, dash))
		if err != nil {
			return err
		}
		defer c.Stop()
	}

	e := server.New(&api.Deps{Records: set, Dashboard: dash})

	if !serveNoBanner {
		figure.NewFigure("Warehouse", bannerFonts[rand.Intn(len(bannerFonts))], true).Print()
		fmt.Println()
	}
	port := servePort
	if port == "" {
		port = config.AppConfig.Port
	}
	log.Printf("Server running on :%s (storage: %s)", port, config.AppConfig.StorageDriver)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdown)
	}()
	if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Listen port (default PORT)")
	serveCmd.Flags().BoolVar(&serveNoCron, "no-cron", false, "Do not start the dashboard refresh scheduler")
	serveCmd.Flags().BoolVar(&serveNoBanner, "no-banner", false, "Skip the start-up banner")
	rootCmd.AddCommand(serveCmd)
}
