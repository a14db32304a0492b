// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package model

// ServerRunning is the only server state reported by /status.
const ServerRunning = "running"

// StatusResponse is a response returned by the API server,
// providing status information.
type StatusResponse struct {
	Server       string `json:"server"`
	CurrentValue string `json:"current_value"`
}
