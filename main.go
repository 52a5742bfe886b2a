package main

import (
	"log"

	"nadi/config"
	"nadi/server"
)

func main() {
	cfg := config.MustLoad()
	app := &server.App{}
	app.Initialize(cfg)
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
