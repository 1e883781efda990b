// Package accelbench benchmarks an image classifier running on an
// accelerator. It streams a labeled dataset through the driver one record at
// a time, times each run, and reports accuracy and throughput.
package accelbench

import (
	"fmt"
	"io"

	"github.com/gorgonia/accelbench/dataset"
	"github.com/gorgonia/accelbench/stopwatch"
	"github.com/gorgonia/accelbench/vfs"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Bench is the entry point of the API. It drives one model loaded on a
// Driver against a dataset.
type Bench struct {
	// state
	Statistics

	conf Config
	drv  Driver
	con  Console
	sw   Timer
	log  *zap.Logger

	norm  *Normalizer
	pixel [3]float32
	out   []float32
}

// New returns a Bench for the model loaded on drv. Reports and the summary
// are written to con.
func New(conf Config, drv Driver, con Console) *Bench {
	if !conf.IsValid() {
		panic("Config is not valid. Unable to proceed")
	}
	if drv == nil || con == nil {
		panic("Bench requires a driver and a console")
	}
	retVal := &Bench{
		Statistics: makeStatistics(),
		conf:       conf,
		drv:        drv,
		con:        con,
		sw:         conf.Timer,
		log:        conf.Logger,
		norm:       NewNormalizer(conf.PixelsPerImage),
		out:        make([]float32, len(conf.Classes)),
	}
	if retVal.sw == nil {
		retVal.sw = stopwatch.New()
	}
	if retVal.log == nil {
		retVal.log = zap.NewNop()
	}
	return retVal
}

// Run reads the dataset file at path into buf and tests every record in it.
// buf must be large enough to hold the whole file.
func (b *Bench) Run(fs FS, path string, buf []byte) error {
	d, err := b.Load(fs, path, buf)
	if err != nil {
		return err
	}
	return b.Test(d)
}

// Load reads the dataset file at path into buf and returns a decoder over it.
func (b *Bench) Load(fs FS, path string, buf []byte) (*dataset.Decoder, error) {
	size, err := fs.Stat(path)
	if err != nil {
		return nil, fsError("stat", path, err)
	}
	if size > int64(len(buf)) {
		b.log.Error("dataset does not fit in buffer",
			zap.String("path", path),
			zap.Int64("size", size),
			zap.Int("buffer", len(buf)))
		return nil, &FilesystemError{Op: "read", Path: path, Result: vfs.NotEnoughCore}
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, fsError("open", path, err)
	}
	b.log.Info("reading test images", zap.String("path", path), zap.Int64("size", size))
	_, err = io.ReadFull(f, buf[:size])
	f.Close()
	if err != nil {
		return nil, fsError("read", path, err)
	}

	d, err := dataset.New(buf[:size], b.conf.PixelsPerImage)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return d, nil
}

// Test runs every record of d through the driver. The first error stops the
// run. The summary is printed only when every record succeeded.
func (b *Bench) Test(d *dataset.Decoder) error {
	if d.Pixels() != b.conf.PixelsPerImage {
		return errors.Errorf("dataset has %d pixels per image, expected %d", d.Pixels(), b.conf.PixelsPerImage)
	}
	b.Statistics = makeStatistics()
	b.log.Info("testing", zap.String("name", b.conf.Name), zap.Int("images", d.Len()))

	if b.conf.Visual {
		b.con.ClearScreen()
	}
	err := b.test(d)
	if b.conf.Visual {
		b.con.ClearScreen()
		b.con.SetCursorPosition(1, 1)
	}
	if err != nil {
		b.log.Error("test aborted", zap.Int("processed", b.TotalCount), zap.Error(err))
		return err
	}

	if b.conf.Recorder != nil {
		if err := b.conf.Recorder.Flush(); err != nil {
			return errors.WithMessage(err, "unable to flush recorder")
		}
	}

	fmt.Fprintf(b.con, "%s: %d images %.2f accuracy at %.2f fps\n",
		b.conf.Name, b.TotalCount, b.Accuracy(), b.Throughput())
	b.log.Info("test done",
		zap.Int("images", b.TotalCount),
		zap.Int("misclassified", b.Misclassified),
		zap.Float32("seconds", b.TotalSeconds))
	return nil
}

func (b *Bench) test(d *dataset.Decoder) error {
	for i := 0; i < d.Len(); i++ {
		r, err := d.Record(i)
		if err != nil {
			return err
		}
		if err := b.step(i, r); err != nil {
			return err
		}
	}
	return nil
}

// step runs one record: load input, run, read output, classify, aggregate,
// and report.
func (b *Bench) step(i int, r dataset.Record) error {
	if err := b.loadInput(r); err != nil {
		return err
	}

	b.sw.Start()
	if err := b.drv.Run(); err != nil {
		return accelError("run", err)
	}
	b.sw.Stop()
	seconds := b.sw.ElapsedSeconds()

	if err := b.drv.GetModelOutputScalars(b.conf.Output, b.out); err != nil {
		return accelError("get output", err)
	}

	expected := int(r.Label)
	actual := Argmax(b.out)
	b.update(Result{Index: i, Expected: expected, Actual: actual, Seconds: seconds})
	if ce := b.log.Check(zap.DebugLevel, "classified"); ce != nil {
		ce.Write(zap.Int("index", i), zap.Int("expected", expected), zap.Int("actual", actual), zap.Float32("seconds", seconds))
	}

	if b.conf.Recorder != nil && b.sampled(i) {
		if err := b.conf.Recorder.Encode(b.sample(i, r, expected, actual, seconds)); err != nil {
			return errors.WithMessage(err, "unable to record sample")
		}
	}
	if b.conf.Visual {
		return b.report(i, r, expected, actual, seconds)
	}
	return nil
}

// loadInput submits the normalized pixels of r in increasing spatial order.
func (b *Bench) loadInput(r dataset.Record) error {
	b.norm.Normalize(r)
	for j := 0; j < b.conf.PixelsPerImage; j++ {
		b.pixel = b.norm.Pixel(j)
		if err := b.drv.LoadModelInputScalars(b.conf.Input, j, b.pixel[:]); err != nil {
			return accelError("load input", err)
		}
	}
	return nil
}

func (b *Bench) sampled(i int) bool { return i%b.conf.ImageEvery == 0 }

func (b *Bench) sample(i int, r dataset.Record, expected, actual int, seconds float32) Sample {
	output := make([]float32, len(b.out))
	copy(output, b.out)
	return Sample{
		Index:    i,
		Image:    r.Image(b.conf.Width),
		Expected: b.className(expected),
		Actual:   b.className(actual),
		Correct:  expected == actual,
		Output:   output,
		Seconds:  seconds,
	}
}
