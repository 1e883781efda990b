package accelbench

//go:generate mockgen -destination=mock/mock.go -package=mock github.com/gorgonia/accelbench Driver,FS

import (
	"image"
	"io"

	"go.uber.org/zap"
)

// CIFAR10Classes are the class names of CIFAR-10, in label order.
var CIFAR10Classes = []string{
	"airplane", "automobile", "bird", "cat", "deer",
	"dog", "frog", "horse", "ship", "truck",
}

type Config struct {
	Name    string // printed in the summary line
	Dataset string // printed in the expected/actual line

	PixelsPerImage int      // pixels per channel plane
	Width          int      // image row length
	Classes        []string // class names in label order. Its length is the output width.

	Input  string // name of the model's input tensor
	Output string // name of the model's output tensor

	Visual     bool // render a live report on the console
	ImageEvery int  // render the image and output every ImageEvery records

	// extensions
	Timer    Timer       // defaults to a system clock stopwatch
	Recorder Recorder    // optional
	Logger   *zap.Logger // defaults to a no-op logger
}

// DefaultConfig is the ResNet20V2 CIFAR-10 benchmark.
func DefaultConfig() Config {
	return Config{
		Name:           "ResNet20V2 on CIFAR",
		Dataset:        "CIFAR",
		PixelsPerImage: 1024,
		Width:          32,
		Classes:        CIFAR10Classes,
		Input:          "x:0",
		Output:         "Identity:0",
		Visual:         true,
		ImageEvery:     100,
	}
}

func (conf Config) IsValid() bool {
	return conf.PixelsPerImage >= 1 &&
		conf.Width >= 1 &&
		conf.Width <= conf.PixelsPerImage &&
		len(conf.Classes) >= 1 &&
		conf.Input != "" &&
		conf.Output != "" &&
		conf.ImageEvery >= 1
}

// FS is a mounted filesystem.
type FS interface {
	// Stat returns the size in bytes of the named file.
	Stat(path string) (int64, error)
	Open(path string) (io.ReadCloser, error)
}

// Driver is an accelerator with a model already loaded.
//
// Inputs are positional: LoadModelInputScalars writes values into vector
// offset of the named input tensor.
type Driver interface {
	LoadModelInputScalars(name string, offset int, values []float32) error
	Run() error
	GetModelOutputScalars(name string, out []float32) error
	PrintModelOutputVectors(w io.Writer, name string) error
}

// Console is a text terminal. Nothing it does can fail.
type Console interface {
	io.Writer
	SetCursorPosition(row, col int)
	SetForegroundColor(r, g, b uint8)
	ResetForegroundColor()
	SetBackgroundColor(r, g, b uint8)
	ResetBackgroundColor()
	ClearScreen()
}

// Timer measures the wall-clock time between Start and Stop.
type Timer interface {
	Start()
	Stop()
	ElapsedSeconds() float32
}

// Recorder encodes sampled records as whatever.
//
// An example Recorder is the GIF encoder in encoding/gif.
type Recorder interface {
	Encode(s Sample) error
	Flush() error
}

// Sample is a classified record handed to a Recorder.
type Sample struct {
	Index    int
	Image    image.Image
	Expected string
	Actual   string
	Correct  bool
	Output   []float32
	Seconds  float32
}
