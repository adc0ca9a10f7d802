package hw

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSimTransportCountsFrames(t *testing.T) {
	tr := NewSim(zerolog.Nop())
	for i := 0; i < 3; i++ {
		assert.NoError(t, tr.Send(context.Background(), []byte{1, 2, 3}))
	}
	assert.Equal(t, 3, tr.Frames())
	assert.NoError(t, tr.Close())
}
