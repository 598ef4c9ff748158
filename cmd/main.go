package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/profiler"

	"github.com/kindfood/erp-system/cmd/api"
	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/config"
	"github.com/kindfood/erp-system/framework/connection"
	"github.com/kindfood/erp-system/logger"
	sessionService "github.com/kindfood/erp-system/session/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Println("error: ", err)
		os.Exit(1)
	}
}

func run() error {
	// Profiler initialization, best done as early as possible.
	if common.Production {
		if err := profiler.Start(profiler.Config{}); err != nil {
			log.Printf("main: could not start profiler: %v", err)
		}
	}

	cfg := config.Load()

	ctx := context.Background()

	logging, err := logger.NewLogging(ctx, cfg.Server.GCPLogging)
	if err != nil {
		log.Printf("main: could not initialize logging. error %s", err)
		return err
	}
	defer logging.Close()

	conn, err := connection.NewConnection(ctx, logging, cfg)
	if err != nil {
		log.Printf("main: could not initialize firebase connections. error %s", err)
		return err
	}
	defer conn.Close()

	// Session event streams outlive single requests; the hub ends them on shutdown.
	hub := sessionService.NewHub()

	// =================
	// Start API Service
	log.Print("started: initializing api support")

	// Make a channel to listen for an interrupt or terminate signal from the OS.
	// Use a buffered channel because the signal package requires it.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	a := api.NewAPI(shutdown, logging, conn, cfg, hub)

	server := http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           a.Build(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Make a channel to listen for errors coming from the listener. Use a
	// buffered channel so the goroutine can exit if we don't collect this error.
	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("listening on %s", cfg.Server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	// =================
	// Shutdown

	select {
	case err := <-serverErrors:
		return fmt.Errorf("%s : starting server", err)

	case sig := <-shutdown:
		log.Printf("%v : start shutdown", sig)

		hub.Close()

		ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		// Asking listener to shutdown and load shed.
		err := server.Shutdown(ctx)
		if err != nil {
			log.Printf("main : graceful shutdown did not complete")

			err = server.Close()
		}

		switch {
		case sig == syscall.SIGSTOP:
			return errors.New("integrity issue caused shutdown")
		case err != nil:
			return fmt.Errorf("could not stop server gracefully: %s", err)
		}
	}

	return nil
}
