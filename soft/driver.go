// Package soft is a software accelerator. It runs a *Model on a gorgonia tape
// machine behind the same positional input/output interface as the hardware
// driver: inputs are loaded one vector at a time into a named input tensor,
// the model is run, and outputs are read back from a named output tensor.
package soft

import (
	"fmt"
	"io"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// Driver holds a loaded model and the VM to run it. By loading the model once
// there is no need to build a VM for every run.
type Driver struct {
	model *Model
	m     G.VM

	input  *tensor.Dense
	output []float32
	ran    bool
}

// NewDriver returns a driver with no model loaded.
func NewDriver() *Driver { return new(Driver) }

// LoadModel binds m to the driver. Any previously loaded model is released.
func (d *Driver) LoadModel(m *Model) error {
	if m.g == nil {
		return errors.New("model is not initialized")
	}
	if err := d.Close(); err != nil {
		return err
	}
	d.model = m
	d.input = tensor.New(tensor.WithShape(m.inputSize()), tensor.Of(Float))
	d.output = make([]float32, m.Classes)
	d.m = G.NewTapeMachine(m.g)
	d.ran = false
	return nil
}

// Model returns the loaded model.
func (d *Driver) Model() *Model { return d.model }

// LoadModelInputScalars writes values into vector offset of the named input.
func (d *Driver) LoadModelInputScalars(name string, offset int, values []float32) error {
	if d.model == nil {
		return errors.New("no model loaded")
	}
	conf := d.model.Config
	if name != conf.Input {
		return errors.Errorf("model has no input named %q", name)
	}
	if offset < 0 || offset >= conf.Vectors {
		return errors.Errorf("input vector %d out of range [0, %d)", offset, conf.Vectors)
	}
	if len(values) > conf.VectorSize {
		return errors.Errorf("%d scalars do not fit in a vector of size %d", len(values), conf.VectorSize)
	}
	data := d.input.Data().([]float32)
	copy(data[offset*conf.VectorSize:], values)
	return nil
}

// Run runs the loaded model against the loaded input.
func (d *Driver) Run() error {
	if d.model == nil {
		return errors.New("no model loaded")
	}
	d.m.Reset()
	if err := G.Let(d.model.x, d.input); err != nil {
		return errors.WithStack(err)
	}
	if err := d.m.RunAll(); err != nil {
		return errors.WithStack(err)
	}
	out := d.model.output.Data().([]float32)
	if !validOutput(out) {
		return errors.Errorf("model produced an invalid output %v", out)
	}
	copy(d.output, out)
	d.ran = true
	return nil
}

// GetModelOutputScalars copies the first len(out) scalars of the named output
// into out.
func (d *Driver) GetModelOutputScalars(name string, out []float32) error {
	if err := d.checkOutput(name); err != nil {
		return err
	}
	if len(out) > len(d.output) {
		return errors.Errorf("requested %d scalars from an output of size %d", len(out), len(d.output))
	}
	copy(out, d.output)
	return nil
}

// PrintModelOutputVectors writes the named output to w, one scalar per line.
func (d *Driver) PrintModelOutputVectors(w io.Writer, name string) error {
	if err := d.checkOutput(name); err != nil {
		return err
	}
	for i, v := range d.output {
		if _, err := fmt.Fprintf(w, "%s[%d] = %+.4f\n", name, i, v); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// Close releases the VM.
func (d *Driver) Close() error {
	if d.m == nil {
		return nil
	}
	err := d.m.Close()
	d.m = nil
	d.model = nil
	return err
}

func (d *Driver) checkOutput(name string) error {
	switch {
	case d.model == nil:
		return errors.New("no model loaded")
	case name != d.model.Output:
		return errors.Errorf("model has no output named %q", name)
	case !d.ran:
		return errors.New("model has not been run")
	}
	return nil
}

func validOutput(out []float32) bool {
	for _, v := range out {
		if math32.IsInf(v, 0) {
			return false
		}
		if math32.IsNaN(v) {
			return false
		}
	}
	return true
}
