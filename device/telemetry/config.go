// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"time"
)

const (
	DefaultDriverName    = "unknown-driver"
	DefaultDriverVersion = "1.0.0"
	DefaultConfigFile    = "/app/config.json"
	DefaultInterval      = 10 * time.Second
	DefaultRetryDelay    = 5 * time.Second
	DefaultConnectDelay  = 2 * time.Second
)

// Config holds driver settings resolved at startup.
type Config struct {
	Name         string
	Version      string
	ConfigFile   string
	Interval     time.Duration
	RetryDelay   time.Duration
	ConnectDelay time.Duration
}

// DefaultConfig returns the settings used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Name:         DefaultDriverName,
		Version:      DefaultDriverVersion,
		ConfigFile:   DefaultConfigFile,
		Interval:     DefaultInterval,
		RetryDelay:   DefaultRetryDelay,
		ConnectDelay: DefaultConnectDelay,
	}
}

// ReadConfigFile decodes the JSON object stored at path.
// A missing file yields an error satisfying os.IsNotExist.
func ReadConfigFile(path string) (map[string]interface{}, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	settings := map[string]interface{}{}
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w", path, err)
	}
	return settings, nil
}
