package main

import (
	"net/http"
	"os"

	"github.com/gorgonia/accelbench"
	"github.com/gorgonia/accelbench/config"
	"github.com/gorgonia/accelbench/console"
	"github.com/gorgonia/accelbench/encoding"
	"github.com/gorgonia/accelbench/encoding/gif"
	"github.com/gorgonia/accelbench/encoding/mjpeg"
	"github.com/gorgonia/accelbench/logger"
	"github.com/gorgonia/accelbench/soft"
	"github.com/gorgonia/accelbench/vfs"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	path, err := config.ParseConfigFlag(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	conf, err := config.Load(path)
	if err != nil {
		logger.New(false).Fatal("unable to load config", zap.Error(err))
	}
	log := logger.New(conf.Log.Debug)
	defer log.Sync()

	if err := run(conf, log); err != nil {
		log.Error("benchmark failed", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

func run(conf *config.AppConfig, log *zap.Logger) (err error) {
	fs, err := vfs.Mount(conf.FS.Root)
	if err != nil {
		return errors.Wrapf(err, "unable to mount %q", conf.FS.Root)
	}
	defer func() {
		if uerr := fs.Unmount(); uerr != nil && err == nil {
			err = uerr
		}
	}()

	drv, err := loadDriver(fs, conf.Model.Path)
	if err != nil {
		return err
	}
	defer drv.Close()

	rec, files, err := recorders(conf, log)
	if err != nil {
		return err
	}
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()

	bc := accelbench.DefaultConfig()
	bc.Name = conf.Model.Name
	bc.Input = drv.Model().Input
	bc.Output = drv.Model().Output
	bc.Visual = conf.Report.Visual
	bc.ImageEvery = conf.Report.ImageEvery
	bc.Logger = log
	if len(rec) > 0 {
		bc.Recorder = rec
	}

	b := accelbench.New(bc, drv, console.New(os.Stdout))
	log.Info("reading test images", zap.String("path", conf.Dataset.Path))
	buf := make([]byte, conf.Dataset.BufferSize)
	if err = b.Run(fs, conf.Dataset.Path, buf); err != nil {
		return err
	}
	log.Info("benchmark finished",
		zap.Int("images", b.TotalCount),
		zap.Int("misclassified", b.Misclassified),
		zap.Float32("accuracy", b.Accuracy()),
		zap.Float32("fps", b.Throughput()))

	if conf.Report.Stats != "" {
		return b.Dump(conf.Report.Stats)
	}
	return nil
}

func loadDriver(fs *vfs.Session, path string) (*soft.Driver, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open model %q", path)
	}
	defer f.Close()
	m, err := soft.Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load model %q", path)
	}
	drv := soft.NewDriver()
	if err := drv.LoadModel(m); err != nil {
		return nil, err
	}
	return drv, nil
}

// recorders builds the configured recorders. The returned files are closed
// once the run is over.
func recorders(conf *config.AppConfig, log *zap.Logger) (encoding.Multi, []*os.File, error) {
	var rec encoding.Multi
	var files []*os.File
	if conf.Report.GIF != "" {
		f, err := os.Create(conf.Report.GIF)
		if err != nil {
			return nil, nil, errors.WithStack(err)
		}
		files = append(files, f)
		rec = append(rec, gif.NewGifEncoder(f, conf.Report.Scale))
	}
	if conf.Report.MJPEG != "" {
		enc := mjpeg.NewEncoder(conf.Report.Scale)
		go func(h http.Handler) {
			mux := http.NewServeMux()
			mux.Handle("/stream", h)
			log.Info("streaming samples", zap.String("addr", conf.Report.MJPEG))
			if err := http.ListenAndServe(conf.Report.MJPEG, mux); err != nil {
				log.Warn("sample stream stopped", zap.Error(err))
			}
		}(enc)
		rec = append(rec, enc)
	}
	return rec, files, nil
}
