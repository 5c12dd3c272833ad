// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/config-hub/internal/config"
	"github.com/MKhiriev/config-hub/internal/handler"
	"github.com/MKhiriev/config-hub/internal/logger"
	"github.com/MKhiriev/config-hub/internal/server"
	"github.com/MKhiriev/config-hub/internal/service"
	"github.com/MKhiriev/config-hub/internal/store"
	"github.com/MKhiriev/config-hub/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("config-hub-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		storages.Close()
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		storages.Close()
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, storages)
	if err != nil {
		storages.Close()
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().
		Str("address", cfg.Server.HTTPAddress).
		Str("version", cfg.App.Version).
		Msg("config-hub server starting")

	srv.RunServer()
}
