package soft

// Config configures the model
type Config struct {
	Vectors    int // number of input vectors (one per pixel)
	VectorSize int // scalars per input vector
	Classes    int // output width

	Input  string // name of the input tensor
	Output string // name of the output tensor
}

// DefaultConf is a CIFAR-10 sized model with the tensor names of an
// ONNX-exported classifier.
func DefaultConf() Config {
	return Config{
		Vectors:    1024,
		VectorSize: 3,
		Classes:    10,
		Input:      "x:0",
		Output:     "Identity:0",
	}
}

func (conf Config) IsValid() bool {
	return conf.Vectors >= 1 &&
		conf.VectorSize >= 1 &&
		conf.Classes >= 1 &&
		conf.Input != "" &&
		conf.Output != "" &&
		conf.Input != conf.Output
}

// inputSize is the total number of input scalars.
func (conf Config) inputSize() int { return conf.Vectors * conf.VectorSize }
