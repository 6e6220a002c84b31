package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-auth-service/internal/adapter"
	"github.com/MKhiriev/go-auth-service/internal/client"
	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "build-info" {
		printBuildInfo()
		return
	}

	log := logger.NewClientLogger("auth-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	credentialAdapter, err := adapter.NewHTTPCredentialAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create credential adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := client.NewApp(credentialAdapter, os.Stdout, log)
	if err = app.Run(ctx, os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
