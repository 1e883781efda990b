// Package encoding draws sampled records as frames for the recorders in its
// subpackages.
package encoding

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/gorgonia/accelbench"
	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

var regular *truetype.Font

const (
	dpi             = 144.0
	fontsize        = 12.0
	lineheight      = 1.2
	dummyLongString = `#000000  10000.00 fps`
)

func init() {
	var err error
	if regular, err = truetype.Parse(gomono.TTF); err != nil {
		panic(err)
	}
}

var (
	match    = image.NewUniform(color.RGBA{0, 160, 0, 255})
	mismatch = image.NewUniform(color.RGBA{200, 0, 0, 255})
)

// Renderer draws a Sample as its image scaled up, followed by the record
// index, the frame rate and the expected and actual classes.
type Renderer struct {
	Scale int
	font.Drawer

	padH, padW int
}

// NewRenderer returns a renderer scaling images by scale.
func NewRenderer(scale int) *Renderer {
	if scale < 1 {
		scale = 1
	}
	return &Renderer{
		Scale: scale,
		padH:  10,
		padW:  10,
		Drawer: font.Drawer{
			Src: image.Black,
			Face: truetype.NewFace(regular, &truetype.Options{
				Size:    fontsize,
				DPI:     dpi,
				Hinting: font.HintingFull,
			}),
		},
	}
}

// Render draws s.
func (r *Renderer) Render(s accelbench.Sample) (*image.RGBA, error) {
	if s.Image == nil {
		return nil, errors.Errorf("sample %d has no image", s.Index)
	}
	lines := []string{
		fmt.Sprintf("#%06d  %.2f fps", s.Index, 1/s.Seconds),
		"expected: " + s.Expected,
		"actual:   " + s.Actual,
	}

	src := s.Image.Bounds()
	imW, imH := src.Dx()*r.Scale, src.Dy()*r.Scale
	textW := font.MeasureString(r.Face, dummyLongString).Ceil()
	for _, l := range lines {
		if w := font.MeasureString(r.Face, l).Ceil(); w > textW {
			textW = w
		}
	}
	dy := int(math.Ceil(fontsize * lineheight * dpi / 72))
	w := maxInt(imW, textW) + 2*r.padW
	h := imH + len(lines)*dy + 2*r.padH

	im := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(im, im.Bounds(), image.White, image.Point{}, draw.Src)
	xdraw.NearestNeighbor.Scale(im, image.Rect(r.padW, r.padH, r.padW+imW, r.padH+imH), s.Image, src, draw.Src, nil)

	r.Dst = im
	y := r.padH + imH
	for i, l := range lines {
		y += dy
		r.Src = image.Black
		if i == len(lines)-1 {
			r.Src = mismatch
			if s.Correct {
				r.Src = match
			}
		}
		r.Dot = fixed.P(r.padW, y)
		r.DrawString(l)
	}
	r.Dst = nil
	return im, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
