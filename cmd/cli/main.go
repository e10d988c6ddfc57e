package main

import (
	"context"
	"log"
	"os"

	"github.com/msurana/gemvault/internal/buildinfo"
	"github.com/msurana/gemvault/internal/client/cli"
	"github.com/msurana/gemvault/internal/client/config"
)

func main() {

	buildinfo.Print(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
