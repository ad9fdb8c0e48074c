package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckDataFlags(t *testing.T) {
	// Defaults: fake data with the default size.
	assert.NoError(t, checkDataFlags(false, false, 128))

	// One data source at a time.
	assert.NoError(t, checkDataFlags(true, false, 128))
	assert.NoError(t, checkDataFlags(false, true, 64))
	assert.Error(t, checkDataFlags(true, true, 64))

	// The fake-data buffer needs a positive size; -f ignores -m's default.
	assert.Error(t, checkDataFlags(false, true, 0))
	assert.Error(t, checkDataFlags(false, false, -3))
	assert.NoError(t, checkDataFlags(true, false, 0))
}
