// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package register

import (
	"sync"
)

// Register is a binary state cell shared by concurrent readers and writers.
// The zero value is not usable, use NewRegister.
type Register struct {
	mutex *sync.RWMutex
	value Value
}

// Load returns the current value.
func (r *Register) Load() Value {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.value
}

// Store replaces the current value.
func (r *Register) Store(v Value) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.value = v
}

// StoreString parses s and stores it. The register is left
// unchanged when s is not a valid symbol.
func (r *Register) StoreString(s string) (Value, error) {
	v, err := ParseValue(s)
	if err != nil {
		return r.Load(), err
	}
	r.Store(v)
	return v, nil
}

// NewRegister returns a register holding Zero.
func NewRegister() *Register {
	return &Register{
		mutex: &sync.RWMutex{},
		value: Zero,
	}
}
