// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Format selects the logrus formatter.
type Format int

const (
	// TextFormat is used for internal logs.
	TextFormat Format = iota
	// JSONFormat is used for telemetry logs.
	JSONFormat
)

// SetOutput configures logging output for standard loggers.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
	logrus.SetOutput(w)
}

// SetLogLevel parses and applies level, and installs the formatter.
func SetLogLevel(level string, format Format) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	logrus.SetLevel(lvl)
	logrus.SetFormatter(NewFormatter(format))
	return nil
}

// NewFormatter returns the logrus formatter for format.
func NewFormatter(format Format) logrus.Formatter {
	if format == JSONFormat {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{FullTimestamp: true, DisableColors: true}
}

// OpenLogFile opens path for appending, creating parent directories,
// and returns a writer duplicating output to both the file and stream.
// The returned closer releases the file.
func OpenLogFile(path string, stream io.Writer) (io.Writer, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	return io.MultiWriter(stream, file), file, nil
}
