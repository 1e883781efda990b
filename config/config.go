// Package config loads the benchmark process configuration.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// ACCELBENCH_ environment variables (ACCELBENCH_REPORT_VISUAL=false sets
// report.visual).
package config

import (
	"flag"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/pkg/errors"
)

const envPrefix = "ACCELBENCH_"

// FSConfig is the mounted filesystem.
type FSConfig struct {
	Root string `koanf:"root"`
}

// DatasetConfig is the dataset file and the buffer it is read into.
type DatasetConfig struct {
	Path       string `koanf:"path"`
	BufferSize int    `koanf:"buffersize"`
}

// ModelConfig is the model file.
type ModelConfig struct {
	Path string `koanf:"path"`
	Name string `koanf:"name"`
}

// ReportConfig controls live and recorded reporting.
type ReportConfig struct {
	Visual     bool   `koanf:"visual"`
	ImageEvery int    `koanf:"imageevery"`
	GIF        string `koanf:"gif"`   // animated GIF of sampled records, if set
	MJPEG      string `koanf:"mjpeg"` // address to stream sampled records on, if set
	Scale      int    `koanf:"scale"`
	Stats      string `koanf:"stats"` // per-record CSV, if set
}

// LogConfig controls logging.
type LogConfig struct {
	Debug bool `koanf:"debug"`
}

// AppConfig is the whole process configuration.
type AppConfig struct {
	FS      FSConfig      `koanf:"fs"`
	Dataset DatasetConfig `koanf:"dataset"`
	Model   ModelConfig   `koanf:"model"`
	Report  ReportConfig  `koanf:"report"`
	Log     LogConfig     `koanf:"log"`
}

var defaults = map[string]interface{}{
	"fs.root":            ".",
	"dataset.path":       "test_batch.bin",
	"dataset.buffersize": 64 << 20,
	"model.path":         "baseline/linear_cifar.model",
	"model.name":         "Linear on CIFAR",
	"report.visual":      true,
	"report.imageevery":  100,
	"report.scale":       8,
	"log.debug":          false,
}

// Load builds the configuration. filePath may be empty.
func Load(filePath string) (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.WithStack(err)
	}

	if filePath != "" {
		if err := k.Load(file.Provider(filePath), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "unable to load %s", filePath)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, errors.WithStack(err)
	}

	var c AppConfig
	if err := k.Unmarshal("", &c); err != nil {
		return nil, errors.WithStack(err)
	}
	return &c, Validate(&c)
}

// Validate checks the configuration for values no run could use.
func Validate(c *AppConfig) error {
	switch {
	case c.Dataset.Path == "":
		return errors.New("dataset.path is empty")
	case c.Dataset.BufferSize <= 0:
		return errors.Errorf("dataset.buffersize %d is not positive", c.Dataset.BufferSize)
	case c.Model.Path == "":
		return errors.New("model.path is empty")
	case c.Report.ImageEvery <= 0:
		return errors.Errorf("report.imageevery %d is not positive", c.Report.ImageEvery)
	case c.Report.Scale <= 0:
		return errors.Errorf("report.scale %d is not positive", c.Report.Scale)
	}
	return nil
}

// ParseConfigFlag returns the configuration file named by the -config flag.
func ParseConfigFlag(args []string) (string, error) {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	configPath := fs.String("config", "", "configuration file")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	return *configPath, nil
}
