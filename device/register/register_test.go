// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package register

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

func TestParseValue(t *testing.T) {
	v, err := ParseValue("0")
	assert.NoError(t, err)
	assert.Equal(t, Zero, v)

	v, err = ParseValue("1")
	assert.NoError(t, err)
	assert.Equal(t, One, v)
}

func TestParseValueRejectsEverythingElse(t *testing.T) {
	for _, input := range []string{"", "2", " 0", "1\n", "01", "true", "one", "-1", "0,1"} {
		_, err := ParseValue(input)
		assert.True(t, errors.Is(err, ErrInvalidValue), "expected %q to be rejected", input)
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "0", Zero.String())
	assert.Equal(t, "1", One.String())
	assert.Equal(t, "Cannot stringify register.Value.7", Value(7).String())
}

func TestNewRegisterStartsAtZero(t *testing.T) {
	assert.Equal(t, Zero, NewRegister().Load())
}

func TestStoreString(t *testing.T) {
	r := NewRegister()

	v, err := r.StoreString("1")
	assert.NoError(t, err)
	assert.Equal(t, One, v)
	assert.Equal(t, One, r.Load())

	v, err = r.StoreString("2")
	assert.True(t, errors.Is(err, ErrInvalidValue))
	assert.Equal(t, One, v)
	assert.Equal(t, One, r.Load())
}

func TestRegistersAreIndependent(t *testing.T) {
	a, b := NewRegister(), NewRegister()
	a.Store(One)
	assert.Equal(t, One, a.Load())
	assert.Equal(t, Zero, b.Load())
}

func TestConcurrentStoreAndLoad(t *testing.T) {
	r := NewRegister()

	var errg errgroup.Group
	for i := 0; i < 100; i++ {
		v := Value(i % 2)
		errg.Go(func() error {
			r.Store(v)
			return nil
		})
		errg.Go(func() error {
			if got := r.Load(); got != Zero && got != One {
				return errors.New("torn value " + got.String())
			}
			return nil
		})
	}

	assert.NoError(t, errg.Wait())
	assert.Contains(t, []Value{Zero, One}, r.Load())
}
