package encoding

import (
	"image"
	"image/color"
	"testing"

	"github.com/gorgonia/accelbench"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(correct bool) accelbench.Sample {
	im := image.NewRGBA(image.Rect(0, 0, 4, 4))
	im.SetRGBA(1, 2, color.RGBA{255, 0, 0, 255})
	return accelbench.Sample{
		Index:    100,
		Image:    im,
		Expected: "cat",
		Actual:   "dog",
		Correct:  correct,
		Output:   []float32{0, 1},
		Seconds:  0.5,
	}
}

func TestRender(t *testing.T) {
	r := NewRenderer(8)
	im, err := r.Render(sample(false))
	require.NoError(t, err)

	b := im.Bounds()
	assert.True(t, b.Dx() >= 4*8+2*r.padW)
	assert.True(t, b.Dy() > 4*8+2*r.padH)

	// the red pixel at (1, 2) is scaled into an 8x8 block
	for _, p := range []image.Point{{8, 16}, {15, 23}} {
		assert.Equal(t, color.RGBA{255, 0, 0, 255}, im.RGBAAt(r.padW+p.X, r.padH+p.Y))
	}
	assert.Equal(t, color.RGBA{0, 0, 0, 0}, im.RGBAAt(r.padW, r.padH))
	assert.Nil(t, r.Dst)
}

func TestRenderNoImage(t *testing.T) {
	s := sample(true)
	s.Image = nil
	_, err := NewRenderer(1).Render(s)
	assert.Error(t, err)
}

type countRecorder struct {
	encoded, flushed int
	err              error
}

func (c *countRecorder) Encode(accelbench.Sample) error { c.encoded++; return c.err }
func (c *countRecorder) Flush() error                   { c.flushed++; return c.err }

func TestMulti(t *testing.T) {
	a, b := new(countRecorder), &countRecorder{err: errors.New("disk full")}
	m := Multi{a, b}

	err := m.Encode(sample(true))
	require.Error(t, err)
	assert.Equal(t, "disk full\n", err.Error())
	assert.Error(t, m.Flush())
	assert.Equal(t, 1, a.encoded)
	assert.Equal(t, 1, b.encoded)
	assert.Equal(t, 1, a.flushed)
	assert.Equal(t, 1, b.flushed)

	assert.NoError(t, Multi{a}.Encode(sample(true)))
	assert.NoError(t, Multi{}.Flush())
}
