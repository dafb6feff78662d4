package main

import (
	"flag"
	"log"

	"github.com/filament-web/filament"
	"github.com/filament-web/filament/blob"
	"github.com/filament-web/filament/config"
	"github.com/filament-web/filament/router/prefix"
	"github.com/filament-web/filament/routes"
)

func main() {
	addr := flag.String("addr", "localhost:4221", "address to listen on")
	directory := flag.String("directory", "", "storage root the file routes read from and write to")
	configPath := flag.String("config", "", "optional JSON config file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("config: %s", err)
		}
	}

	r := routes.Register(prefix.New(), blob.NewStore(*directory))

	app := filament.New(*addr).
		Tune(cfg).
		NotifyOnStart(func() {
			log.Println("listening on", *addr)
		})

	log.Fatal(app.Serve(r))
}
