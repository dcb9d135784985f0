//go:build !cli
// +build !cli

package main

import (
	"context"
	"log"

	_ "warehouse.GO/custom"

	"warehouse.GO/cmd"
	"warehouse.GO/config"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()
	if err := cmd.Serve(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
