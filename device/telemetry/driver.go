// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Driver periodically samples a device and logs the readings.
// It never shares state with the register server.
type Driver struct {
	config   Config
	sampler  Sampler
	entry    *logrus.Entry
	settings map[string]interface{}

	stopOnce sync.Once
	stopped  chan struct{}
}

// NewDriver returns a driver logging through logger.
func NewDriver(config Config, sampler Sampler, logger *logrus.Logger) *Driver {
	return &Driver{
		config:  config,
		sampler: sampler,
		entry: logger.WithFields(logrus.Fields{
			"driverName": config.Name,
			"instanceId": uuid.New().String(),
		}),
		settings: map[string]interface{}{},
		stopped:  make(chan struct{}),
	}
}

// Initialize simulates connecting to the device and loads the config file.
func (d *Driver) Initialize(ctx context.Context) error {
	d.entry.Infof("Initializing IoT driver: %s v%s", d.config.Name, d.config.Version)

	d.entry.Info("Connecting to IoT device...")
	if err := sleep(ctx, d.config.ConnectDelay); err != nil {
		return err
	}
	d.entry.Info("Device connected")

	d.loadConfig()
	return nil
}

func (d *Driver) loadConfig() {
	settings, err := ReadConfigFile(d.config.ConfigFile)
	switch {
	case os.IsNotExist(err):
		d.entry.Info("No config file found, using default configuration")
	case err != nil:
		d.entry.WithError(err).Warn("Failed to load config file")
	default:
		d.settings = settings
		d.entry.WithField("config", settings).Info("Config loaded")
	}
}

// Settings returns the values loaded from the config file.
func (d *Driver) Settings() map[string]interface{} {
	return d.settings
}

// Run samples every interval until ctx is canceled or Stop is called.
// A failed sample is logged and retried after the retry delay.
func (d *Driver) Run(ctx context.Context) error {
	d.entry.Info("Starting data collection...")

	for {
		select {
		case <-d.stopped:
			return nil
		default:
		}

		wait := d.config.Interval
		reading, err := d.sampler.Sample(ctx)
		if err != nil && ctx.Err() == nil {
			d.entry.WithError(err).Error("Data collection failed")
			wait = d.config.RetryDelay
		} else if err == nil {
			d.entry.WithFields(reading.Fields()).Info("Collected reading")
		}

		select {
		case <-ctx.Done():
			d.entry.Info("Received stop signal")
			return nil
		case <-d.stopped:
			return nil
		case <-time.After(wait):
		}
	}
}

// Stop makes Run return. Safe to call more than once.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		d.entry.Info("Stopping IoT driver...")
		close(d.stopped)
		d.entry.Info("IoT driver stopped")
	})
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
