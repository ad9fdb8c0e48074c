package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOps(t *testing.T) {
	assert.Equal(t, int64(100_000_000), parseOps("100"))
	assert.Equal(t, int64(500_000), parseOps("0.5"))

	// Non-positive and garbage arguments fall back to the default.
	assert.Equal(t, int64(1000), parseOps("0"))
	assert.Equal(t, int64(1000), parseOps("-3"))
	assert.Equal(t, int64(1000), parseOps("bogus"))
}
