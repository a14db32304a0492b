// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"go.iotdriver.dev/device/logging"
	"go.iotdriver.dev/device/rapi"
	"go.iotdriver.dev/device/register"
)

type options struct {
	Host              string        `long:"host" env:"DEVICE_HOST" default:"0.0.0.0" description:"interface to bind"`
	Port              int           `long:"port" env:"DEVICE_PORT" default:"11111" description:"port to listen on"`
	LogLevel          string        `long:"log-level" env:"LOG_LEVEL" default:"info" description:"log level"`
	LogFile           string        `long:"log-file" env:"LOG_FILE" description:"also write logs to this file"`
	ReadHeaderTimeout time.Duration `long:"read-header-timeout" default:"5s" description:"time allowed to read request headers"`
	ReadTimeout       time.Duration `long:"read-timeout" default:"10s" description:"time allowed to read a whole request"`
	WriteTimeout      time.Duration `long:"write-timeout" default:"10s" description:"time allowed to write a response"`
	IdleTimeout       time.Duration `long:"idle-timeout" default:"60s" description:"keep-alive idle timeout"`
	ShutdownTimeout   time.Duration `long:"shutdown-timeout" default:"5s" description:"time allowed to drain requests on shutdown"`
}

func (o options) timeouts() rapi.Timeouts {
	return rapi.Timeouts{
		ReadHeader: o.ReadHeaderTimeout,
		Read:       o.ReadTimeout,
		Write:      o.WriteTimeout,
		Idle:       o.IdleTimeout,
	}
}

func main() {
	opts := getCLIArgs(os.Args)
	closeLog := setupLogging(opts)

	err := start(context.Background(), opts)
	if err != nil {
		log.WithError(err).Error("Server failed")
	}
	// os.Exit skips deferred calls
	closeLog()
	if err != nil {
		os.Exit(1)
	}
}

// start binds the configured address and serves until shutdown.
func start(ctx context.Context, opts options) error {
	server := rapi.NewServer(opts.Host, opts.Port, register.NewRegister(), opts.timeouts())
	if err := server.Listen(); err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	log.Infof("Server running on port %d", server.Port())

	return run(ctx, server, opts.ShutdownTimeout)
}

// run serves until the server fails or SIGINT/SIGTERM is received.
func run(ctx context.Context, server *rapi.Server, shutdownTimeout time.Duration) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Serve(ctx, shutdownTimeout)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Received stop signal")
		return nil
	})
	return g.Wait()
}

func getCLIArgs(args []string) options {
	opts, err := parseCLIArgs(args)
	if err != nil {
		log.WithError(err).Fatal("Failed to parse command line arguments:", args)
	}
	return opts
}

func parseCLIArgs(args []string) (options, error) {
	var opts options
	parser := flags.NewParser(&opts, flags.IgnoreUnknown)
	_, err := parser.ParseArgs(args)
	return opts, err
}

func setupLogging(opts options) func() {
	if err := logging.SetLogLevel(opts.LogLevel, logging.TextFormat); err != nil {
		log.WithError(err).Fatal("Failed to set log level. Valid log levels are:", log.AllLevels)
	}

	if opts.LogFile == "" {
		return func() {}
	}

	w, closer, err := logging.OpenLogFile(opts.LogFile, os.Stderr)
	if err != nil {
		log.WithError(err).Fatal("Failed to open log file")
	}
	logging.SetOutput(w)
	return func() { closer.Close() }
}
