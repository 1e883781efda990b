package mjpeg

import (
	"bytes"
	"image/jpeg"
	"net/http"

	"github.com/gorgonia/accelbench"
	"github.com/gorgonia/accelbench/encoding"
	"github.com/mattn/go-mjpeg"
	"github.com/pkg/errors"
)

// Encoder streams samples as motion JPEG according to the accelbench.Recorder
// interface. Serve it over HTTP to watch a run from a browser.
type Encoder struct {
	stream *mjpeg.Stream
	r      *encoding.Renderer

	// Last holds the last JPEG frame pushed to the stream.
	Last []byte
}

func (e *Encoder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e.stream.ServeHTTP(w, r)
}

// NewEncoder returns an encoder scaling images by scale.
func NewEncoder(scale int) *Encoder {
	return &Encoder{
		stream: mjpeg.NewStream(),
		r:      encoding.NewRenderer(scale),
	}
}

// Encode a sample
func (enc *Encoder) Encode(s accelbench.Sample) error {
	im, err := enc.r.Render(s)
	if err != nil {
		return err
	}
	var b bytes.Buffer
	if err = jpeg.Encode(&b, im, nil); err != nil {
		return errors.WithStack(err)
	}
	enc.Last = b.Bytes()
	return errors.WithStack(enc.stream.Update(enc.Last))
}

func (enc *Encoder) Flush() error { return nil }
