// Package dataset decodes flat binary labeled image datasets.
//
// A dataset is a sequence of fixed size records with no header or footer:
//
//	[label:1][red:pixels][green:pixels][blue:pixels]
//
// The record count is derived from the buffer length. A trailing partial
// record is ignored.
package dataset

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// Record is one labeled image. The planes are views into the decoder's
// buffer and must not be modified.
type Record struct {
	Label byte
	Red   []byte
	Green []byte
	Blue  []byte
}

// Image returns the record's raw channel bytes as an image with rows of the
// given width.
func (r Record) Image(width int) *image.RGBA {
	height := (len(r.Red) + width - 1) / width
	im := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := range r.Red {
		im.SetRGBA(j%width, j/width, color.RGBA{R: r.Red[j], G: r.Green[j], B: r.Blue[j], A: 255})
	}
	return im
}

// Decoder exposes the records of a buffer without copying.
type Decoder struct {
	buf    []byte
	pixels int
	stride int
	count  int
}

// New returns a decoder over buf for images of the given pixel count.
func New(buf []byte, pixels int) (*Decoder, error) {
	if pixels <= 0 {
		return nil, errors.Errorf("invalid pixel count %d", pixels)
	}
	if len(buf) == 0 {
		return nil, errors.New("empty dataset")
	}
	stride := Stride(pixels)
	return &Decoder{
		buf:    buf,
		pixels: pixels,
		stride: stride,
		count:  len(buf) / stride,
	}, nil
}

// Stride is the size in bytes of one record.
func Stride(pixels int) int { return 1 + 3*pixels }

// Len returns the number of whole records.
func (d *Decoder) Len() int { return d.count }

// Stride returns the size in bytes of one record.
func (d *Decoder) Stride() int { return d.stride }

// Pixels returns the number of pixels per image.
func (d *Decoder) Pixels() int { return d.pixels }

// Record returns the ith record.
func (d *Decoder) Record(i int) (Record, error) {
	if i < 0 || i >= d.count {
		return Record{}, errors.Errorf("record %d out of range [0, %d)", i, d.count)
	}
	start := i * d.stride
	red := start + 1
	green := red + d.pixels
	blue := green + d.pixels
	end := blue + d.pixels
	return Record{
		Label: d.buf[start],
		Red:   d.buf[red:green:green],
		Green: d.buf[green:blue:blue],
		Blue:  d.buf[blue:end:end],
	}, nil
}
