package main

import (
	"context"
	"log"

	"github.com/SISDRUG/bankoffice/internal/cli"
	"github.com/SISDRUG/bankoffice/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
