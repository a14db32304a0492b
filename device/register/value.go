// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package register

import (
	"errors"
	"fmt"
)

// Value is a register symbol.
type Value int

const (
	// Zero is the initial register value.
	Zero Value = iota
	One
)

// ErrInvalidValue returned when a payload is not a register symbol
var ErrInvalidValue = errors.New("invalid register value")

// ParseValue returns the Value represented by s. Only the exact
// strings "0" and "1" are accepted, surrounding whitespace included.
func ParseValue(s string) (Value, error) {
	switch s {
	case "0":
		return Zero, nil
	case "1":
		return One, nil
	}
	return Zero, fmt.Errorf("%w: %q", ErrInvalidValue, s)
}

func (v Value) String() string {
	switch v {
	case Zero:
		return "0"
	case One:
		return "1"
	}
	return fmt.Sprintf("Cannot stringify register.Value.%d", int(v))
}
