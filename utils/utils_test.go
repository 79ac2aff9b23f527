package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 440.0, Round2(440))
	assert.Equal(t, 100.01, Round2(100.005000001))
	assert.Equal(t, 0.1, Round2(0.1))
	assert.Equal(t, 549.99, Round2(549.99))
	assert.Equal(t, 2.68, Round2(2.675000001))
}
