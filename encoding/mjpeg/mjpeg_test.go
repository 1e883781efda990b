package mjpeg

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"

	"github.com/gorgonia/accelbench"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	enc := NewEncoder(2)
	require.NoError(t, enc.Encode(accelbench.Sample{
		Image:    image.NewRGBA(image.Rect(0, 0, 32, 32)),
		Expected: "frog",
		Actual:   "deer",
		Seconds:  0.02,
	}))
	assert.NoError(t, enc.Flush())

	im, err := jpeg.Decode(bytes.NewReader(enc.Last))
	require.NoError(t, err)
	assert.True(t, im.Bounds().Dx() >= 64)
}
