package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCoordinate(t *testing.T) {
	assert.Equal(t, -6.175392, RoundCoordinate(-6.1753921))
	assert.Equal(t, 106.827153, RoundCoordinate(106.8271534))
	assert.Equal(t, 0.0, RoundCoordinate(0))
}
