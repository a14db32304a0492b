// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

/*

Both device commands log through logrus.

1. Internal logs: request handling and lifecycle messages, text formatted
2. Telemetry logs: readings emitted by the driver, JSON formatted so each sample is one parseable line

Logs always go to the process' standard stream and, when a log file is
configured, to that file as well.

*/
package logging
