package gif

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"

	"github.com/gorgonia/accelbench"
	"github.com/gorgonia/accelbench/encoding"
)

// Encoder is a structure that encodes samples according to the
// accelbench.Recorder interface. Frames are held in memory until Flush.
type Encoder struct {
	io.Writer
	Delay int // per frame, in 100ths of a second

	out *gif.GIF
	r   *encoding.Renderer
}

// NewGifEncoder returns an encoder writing an animated GIF to w, scaling
// images by scale.
func NewGifEncoder(w io.Writer, scale int) *Encoder {
	return &Encoder{
		Writer: w,
		Delay:  100,
		out:    &gif.GIF{LoopCount: 0},
		r:      encoding.NewRenderer(scale),
	}
}

// Encode a sample
func (enc *Encoder) Encode(s accelbench.Sample) error {
	frame, err := enc.r.Render(s)
	if err != nil {
		return err
	}
	im := image.NewPaletted(frame.Bounds(), palette.Plan9)
	draw.Draw(im, im.Bounds(), frame, frame.Bounds().Min, draw.Src)

	enc.out.Image = append(enc.out.Image, im)
	enc.out.Delay = append(enc.out.Delay, enc.Delay)
	return nil
}

// Frames returns the number of frames encoded so far.
func (enc *Encoder) Frames() int { return len(enc.out.Image) }

// Flush writes the gif into the writer. Nothing is written when no sample
// was encoded.
func (enc *Encoder) Flush() error {
	if len(enc.out.Image) == 0 {
		return nil
	}
	return gif.EncodeAll(enc.Writer, enc.out)
}
