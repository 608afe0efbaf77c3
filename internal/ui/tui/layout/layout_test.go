package layout

import (
	"testing"

	"github.com/isaacphi/tirc/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestComputeRawPercentages(t *testing.T) {
	r := DefaultRatios()
	r.MinInputHeight = 0

	p := Compute(100, 100, r)
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 25, Height: 100}, p.Channels)
	assert.Equal(t, Rect{X: 25, Y: 0, Width: 75, Height: 95}, p.Messages)
	assert.Equal(t, Rect{X: 25, Y: 95, Width: 75, Height: 5}, p.Input)
}

func TestComputeMinInputHeight(t *testing.T) {
	p := Compute(80, 24, DefaultRatios())
	assert.Equal(t, 20, p.Channels.Width)
	assert.Equal(t, 60, p.Messages.Width)
	assert.Equal(t, 3, p.Input.Height)
	assert.Equal(t, 21, p.Messages.Height)
	assert.Equal(t, 21, p.Input.Y)

	raw := DefaultRatios()
	raw.MinInputHeight = 0
	exact := Compute(80, 24, raw)
	assert.Equal(t, 22, exact.Messages.Height)
	assert.Equal(t, 2, exact.Input.Height)

	tiny := Compute(10, 2, DefaultRatios())
	assert.Equal(t, 2, tiny.Input.Height)
	assert.True(t, tiny.Messages.Empty())
}

func TestComputeCoversScreen(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {1, 1}, {7, 13}, {80, 24}, {213, 57}} {
		w, h := size[0], size[1]
		p := Compute(w, h, DefaultRatios())
		assert.Equal(t, w, p.Channels.Width+p.Messages.Width, "%dx%d", w, h)
		assert.Equal(t, h, p.Messages.Height+p.Input.Height, "%dx%d", w, h)
		assert.Equal(t, p.Messages.Width, p.Input.Width)
		assert.Equal(t, h, p.Channels.Height)
	}
}

func TestComputeFallsBackOnInvalidRatios(t *testing.T) {
	p := Compute(100, 100, Ratios{ChannelsPercent: 0, MessagesPercent: 150})
	assert.Equal(t, 25, p.Channels.Width)
	assert.Equal(t, 95, p.Messages.Height)

	neg := Compute(-5, -5, DefaultRatios())
	assert.True(t, neg.Channels.Empty())
	assert.True(t, neg.Input.Empty())
}

func TestFromConfig(t *testing.T) {
	r := FromConfig(config.Layout{ChannelsPercent: 30, MessagesPercent: 80, MinInputHeight: 0})
	p := Compute(100, 100, r)
	assert.Equal(t, 30, p.Channels.Width)
	assert.Equal(t, 80, p.Messages.Height)
	assert.Equal(t, 20, p.Input.Height)
}
