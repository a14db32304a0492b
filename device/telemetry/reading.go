// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

const statusActive = "active"

// Reading is a single telemetry sample.
type Reading struct {
	Timestamp   time.Time `json:"timestamp"`
	Driver      string    `json:"driver"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Status      string    `json:"status"`
}

// Fields returns the reading as structured log fields.
func (r Reading) Fields() log.Fields {
	return log.Fields{
		"timestamp":   r.Timestamp.Format(time.RFC3339Nano),
		"driver":      r.Driver,
		"temperature": r.Temperature,
		"humidity":    r.Humidity,
		"status":      r.Status,
	}
}

// Sampler produces readings.
type Sampler interface {
	Sample(ctx context.Context) (Reading, error)
}

// SyntheticSampler derives readings from the wall clock.
type SyntheticSampler struct {
	driver string
	now    func() time.Time
}

// Sample returns temperature 25.5 + (t mod 10) and humidity 65.0 + (t mod 5),
// t being the current unix time in seconds.
func (s *SyntheticSampler) Sample(ctx context.Context) (Reading, error) {
	if err := ctx.Err(); err != nil {
		return Reading{}, err
	}

	now := s.now()
	seconds := float64(now.UnixNano()) / float64(time.Second)
	return Reading{
		Timestamp:   now,
		Driver:      s.driver,
		Temperature: 25.5 + mod(seconds, 10),
		Humidity:    65.0 + mod(seconds, 5),
		Status:      statusActive,
	}, nil
}

func mod(x, m float64) float64 {
	return x - m*float64(int64(x/m))
}

// NewSyntheticSampler returns a sampler tagging readings with driver.
func NewSyntheticSampler(driver string) *SyntheticSampler {
	return &SyntheticSampler{
		driver: driver,
		now:    time.Now,
	}
}
