package accelbench

import (
	"bytes"
	"fmt"
	"io"
)

// fakeConsole records console operations inline with the text written.
type fakeConsole struct {
	bytes.Buffer
}

func (c *fakeConsole) SetCursorPosition(row, col int) { fmt.Fprintf(&c.Buffer, "<cursor %d,%d>", row, col) }
func (c *fakeConsole) SetForegroundColor(r, g, b uint8) {
	fmt.Fprintf(&c.Buffer, "<fg %d,%d,%d>", r, g, b)
}
func (c *fakeConsole) ResetForegroundColor() { c.WriteString("<fg>") }
func (c *fakeConsole) SetBackgroundColor(r, g, b uint8) {
	fmt.Fprintf(&c.Buffer, "<bg %d,%d,%d>", r, g, b)
}
func (c *fakeConsole) ResetBackgroundColor() { c.WriteString("<bg>") }
func (c *fakeConsole) ClearScreen()          { c.WriteString("<clear>") }

type fixedTimer struct {
	seconds          float32
	started, stopped int
}

func (t *fixedTimer) Start()                  { t.started++ }
func (t *fixedTimer) Stop()                   { t.stopped++ }
func (t *fixedTimer) ElapsedSeconds() float32 { return t.seconds }

type load struct {
	name   string
	offset int
	values []float32
}

// stubDriver always produces the same output.
type stubDriver struct {
	output []float32

	loads []load
	runs  int

	failOffset int
	loadErr    error
	runErr     error
	outErr     error
	printErr   error
	onRun      func()
}

func (d *stubDriver) LoadModelInputScalars(name string, offset int, values []float32) error {
	if d.loadErr != nil && offset == d.failOffset {
		return d.loadErr
	}
	v := make([]float32, len(values))
	copy(v, values)
	d.loads = append(d.loads, load{name, offset, v})
	return nil
}

func (d *stubDriver) Run() error {
	d.runs++
	if d.onRun != nil {
		d.onRun()
	}
	return d.runErr
}

func (d *stubDriver) GetModelOutputScalars(name string, out []float32) error {
	if d.outErr != nil {
		return d.outErr
	}
	copy(out, d.output)
	return nil
}

func (d *stubDriver) PrintModelOutputVectors(w io.Writer, name string) error {
	if d.printErr != nil {
		return d.printErr
	}
	fmt.Fprintf(w, "%s %v\n", name, d.output)
	return nil
}

func oneHot(n, k int) []float32 {
	retVal := make([]float32, n)
	retVal[k] = 1
	return retVal
}

func uniform(pixels int, v byte) []byte {
	retVal := make([]byte, pixels)
	for i := range retVal {
		retVal[i] = v
	}
	return retVal
}

// record encodes one dataset record.
func record(label byte, red, green, blue []byte) []byte {
	retVal := []byte{label}
	retVal = append(retVal, red...)
	retVal = append(retVal, green...)
	return append(retVal, blue...)
}

// testConf is a 2x2 image CIFAR-10 benchmark.
func testConf(visual bool) Config {
	conf := DefaultConfig()
	conf.PixelsPerImage = 4
	conf.Width = 2
	conf.Visual = visual
	return conf
}
