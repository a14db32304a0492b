// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package model

const (
	// ValueSetMessage is returned after a successful push.
	ValueSetMessage = "Value set successfully"
	// InvalidValueMessage is returned when a pushed payload is not a register symbol.
	InvalidValueMessage = "Invalid value. Must be '0' or '1'"
)

// RequestIDHeader carries the request identifier on requests and responses.
const RequestIDHeader = "X-Request-Id"

type ctxKey int

// RequestIDCtxKey is the request context key holding the request uuid.UUID.
const RequestIDCtxKey ctxKey = iota
