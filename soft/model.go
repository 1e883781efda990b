package soft

import (
	"bytes"
	"encoding/gob"
	"io"

	"github.com/pkg/errors"
	G "gorgonia.org/gorgonia"
)

var Float = G.Float32

// Model is a linear classifier over a flattened input tensor:
//
//	output = W·x + b
type Model struct {
	Config

	g      *G.ExprGraph
	x      *G.Node
	w, b   *G.Node
	logits *G.Node

	output G.Value
}

// New returns a new, uninitialized *Model.
func New(conf Config) *Model {
	return &Model{Config: conf}
}

// Init builds the graph and initializes the weights.
func (m *Model) Init() error {
	if !m.IsValid() {
		return errors.Errorf("invalid model config %+v", m.Config)
	}
	m.reset()
	m.g = G.NewGraph()
	m.x = G.NewVector(m.g, Float, G.WithShape(m.inputSize()), G.WithName(m.Input))
	m.w = G.NewMatrix(m.g, Float, G.WithShape(m.Classes, m.inputSize()), G.WithName("W"), G.WithInit(G.GlorotN(1.0)))
	m.b = G.NewVector(m.g, Float, G.WithShape(m.Classes), G.WithName("b"), G.WithInit(G.Zeroes()))

	var mb maebe
	logits := mb.do(func() (*G.Node, error) { return G.Mul(m.w, m.x) })
	logits = mb.do(func() (*G.Node, error) { return G.Add(logits, m.b) })
	if mb.err != nil {
		return mb.err
	}
	m.logits = logits
	G.Read(m.logits, &m.output)
	return nil
}

// Weights returns the backing data of the weight matrix and the bias.
// They are row major: W[class*inputSize+i].
func (m *Model) Weights() (w, b []float32) {
	return m.w.Value().Data().([]float32), m.b.Value().Data().([]float32)
}

// SetWeights copies w and b into the model.
func (m *Model) SetWeights(w, b []float32) error {
	mw, mb := m.Weights()
	if len(w) != len(mw) || len(b) != len(mb) {
		return errors.Errorf("expected %d weights and %d biases. Got %d and %d", len(mw), len(mb), len(w), len(b))
	}
	copy(mw, w)
	copy(mb, b)
	return nil
}

func (m *Model) reset() {
	m.g = nil
	m.x = nil
	m.w = nil
	m.b = nil
	m.logits = nil
	m.output = nil
}

func (m *Model) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	w, b := m.Weights()
	for _, v := range []interface{}{m.Config, w, b} {
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func (m *Model) GobDecode(p []byte) error {
	dec := gob.NewDecoder(bytes.NewBuffer(p))
	if err := dec.Decode(&m.Config); err != nil {
		return err
	}
	if err := m.Init(); err != nil {
		return err
	}
	var w, b []float32
	if err := dec.Decode(&w); err != nil {
		return err
	}
	if err := dec.Decode(&b); err != nil {
		return err
	}
	return m.SetWeights(w, b)
}

// Save writes the model to w.
func (m *Model) Save(w io.Writer) error {
	return errors.WithStack(gob.NewEncoder(w).Encode(m))
}

// Load reads a model written by Save.
func Load(r io.Reader) (*Model, error) {
	m := new(Model)
	if err := gob.NewDecoder(r).Decode(m); err != nil {
		return nil, errors.Wrap(err, "unable to decode model")
	}
	return m, nil
}
