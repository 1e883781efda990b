package gif

import (
	"bytes"
	"image"
	"image/gif"
	"testing"

	"github.com/gorgonia/accelbench"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewGifEncoder(&buf, 4)

	require.NoError(t, enc.Flush())
	assert.Zero(t, buf.Len(), "nothing to flush")

	for i := 0; i < 3; i++ {
		require.NoError(t, enc.Encode(accelbench.Sample{
			Index:    i * 100,
			Image:    image.NewRGBA(image.Rect(0, 0, 32, 32)),
			Expected: "ship",
			Actual:   "ship",
			Correct:  true,
			Seconds:  0.01,
		}))
	}
	assert.Equal(t, 3, enc.Frames())
	require.NoError(t, enc.Flush())

	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, g.Image, 3)
	assert.Equal(t, []int{100, 100, 100}, g.Delay)
}
