package main

import (
	"log"

	"github.com/kgw94/go-liteflare/app"
	fwapp "github.com/kgw94/go-liteflare/framework/app"
)

func main() {
	application := fwapp.New() // loads .env automatically

	app.RegisterServices(application)
	app.RegisterRoutes(application)

	if err := application.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
