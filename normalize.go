package accelbench

import (
	"github.com/gorgonia/accelbench/dataset"
	"gorgonia.org/vecf32"
)

func channelToFloat(v byte) float32 { return float32(v) / 255 }

// ChannelMean is the mean of the plane's values scaled into [0, 1].
func ChannelMean(plane []byte) float32 {
	var sum float32
	for _, v := range plane {
		sum += channelToFloat(v)
	}
	return sum / float32(len(plane))
}

// NormalizePlane writes the plane's values, scaled into [0, 1] and centered on
// their mean, into dst. It returns the mean.
func NormalizePlane(dst []float32, plane []byte) float32 {
	dst = dst[:len(plane)]
	for i, v := range plane {
		dst[i] = channelToFloat(v)
	}
	mean := vecf32.Sum(dst) / float32(len(dst))
	vecf32.Trans(dst, -mean)
	return mean
}

// Normalizer zero-centers the channels of one image at a time. The means are
// computed per image.
type Normalizer struct {
	planes [3][]float32
}

func NewNormalizer(pixels int) *Normalizer {
	var n Normalizer
	for c := range n.planes {
		n.planes[c] = make([]float32, pixels)
	}
	return &n
}

// Normalize normalizes the record's red, green and blue planes and returns
// their means.
func (n *Normalizer) Normalize(r dataset.Record) (means [3]float32) {
	for c, plane := range [3][]byte{r.Red, r.Green, r.Blue} {
		means[c] = NormalizePlane(n.planes[c], plane)
	}
	return means
}

// Pixel is the normalized {r, g, b} vector at spatial index j of the last
// normalized record.
func (n *Normalizer) Pixel(j int) [3]float32 {
	return [3]float32{n.planes[0][j], n.planes[1][j], n.planes[2][j]}
}

// Plane returns the normalized plane of channel c (0: red, 1: green, 2: blue).
func (n *Normalizer) Plane(c int) []float32 { return n.planes[c] }
