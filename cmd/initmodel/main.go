// initmodel writes a freshly initialized linear CIFAR-10 model for the soft
// accelerator.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/gorgonia/accelbench/logger"
	"github.com/gorgonia/accelbench/soft"
	"go.uber.org/zap"
)

var out = flag.String("o", "baseline/linear_cifar.model", "model file to write")

func main() {
	flag.Parse()
	log := logger.New(false)
	defer log.Sync()

	m := soft.New(soft.DefaultConf())
	if err := m.Init(); err != nil {
		log.Fatal("unable to initialize model", zap.Error(err))
	}
	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.Fatal("unable to create model directory", zap.Error(err))
	}
	f, err := os.Create(*out)
	if err != nil {
		log.Fatal("unable to create model file", zap.Error(err))
	}
	if err := m.Save(f); err != nil {
		f.Close()
		log.Fatal("unable to save model", zap.Error(err))
	}
	if err := f.Close(); err != nil {
		log.Fatal("unable to save model", zap.Error(err))
	}
	log.Info("model written", zap.String("path", *out))
}
