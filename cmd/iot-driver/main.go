// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"go.iotdriver.dev/device/logging"
	"go.iotdriver.dev/device/telemetry"
)

type options struct {
	Name         string        `long:"name" env:"IOT_DRIVER_NAME" default:"unknown-driver" description:"driver name attached to readings"`
	Version      string        `long:"driver-version" env:"IOT_DRIVER_VERSION" default:"1.0.0" description:"driver version"`
	ConfigFile   string        `long:"config" env:"IOT_DRIVER_CONFIG" default:"/app/config.json" description:"optional JSON config file"`
	Interval     time.Duration `long:"interval" default:"10s" description:"time between readings"`
	RetryDelay   time.Duration `long:"retry-delay" default:"5s" description:"wait after a failed reading"`
	ConnectDelay time.Duration `long:"connect-delay" default:"2s" description:"simulated device connection time"`
	LogLevel     string        `long:"log-level" env:"LOG_LEVEL" default:"info" description:"log level"`
	LogFile      string        `long:"log-file" env:"LOG_FILE" description:"also write logs to this file, e.g. /var/log/iot-driver/driver.log"`
}

func (o options) config() telemetry.Config {
	return telemetry.Config{
		Name:         o.Name,
		Version:      o.Version,
		ConfigFile:   o.ConfigFile,
		Interval:     o.Interval,
		RetryDelay:   o.RetryDelay,
		ConnectDelay: o.ConnectDelay,
	}
}

func main() {
	opts := getCLIArgs(os.Args)
	closeLog := setupLogging(opts)

	log.Info("Starting IoT driver")
	driver := telemetry.NewDriver(opts.config(), telemetry.NewSyntheticSampler(opts.Name), log.StandardLogger())

	err := run(context.Background(), driver)
	driver.Stop()
	closeLog()
	if err != nil {
		log.WithError(err).Error("Driver failed")
		os.Exit(1)
	}
}

// run initializes the driver and collects readings until SIGINT/SIGTERM.
func run(ctx context.Context, driver *telemetry.Driver) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := driver.Initialize(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	return driver.Run(ctx)
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
	if err := logging.SetLogLevel(opts.LogLevel, logging.JSONFormat); err != nil {
		log.WithError(err).Fatal("Failed to set log level. Valid log levels are:", log.AllLevels)
	}
	logging.SetOutput(os.Stdout)

	if opts.LogFile == "" {
		return func() {}
	}

	w, closer, err := logging.OpenLogFile(opts.LogFile, os.Stdout)
	if err != nil {
		log.WithError(err).Warn("Failed to open log file, logging to stdout only")
		return func() {}
	}
	logging.SetOutput(w)
	return func() { closer.Close() }
}
