package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/nvr-ai/go-iconset/config"
	"github.com/nvr-ai/go-iconset/iconset"
	"github.com/pkg/errors"
)

// command is a parsed invocation.
type command struct {
	cfg     config.Config
	verbose bool
}

// parseArgs loads the config file named by -config (or ICONSET_CONFIG), then
// applies the flags that were set explicitly.
func parseArgs(fs *flag.FlagSet, args []string) (command, error) {
	var (
		path     string
		source   string
		out      string
		prefix   string
		filename string
		format   string
		filter   string
		backend  string
		workers  int
		verbose  bool
	)
	fs.StringVar(&path, "config", os.Getenv("ICONSET_CONFIG"), "path to a YAML config file")
	fs.StringVar(&source, "source", "", "source image to resample")
	fs.StringVar(&out, "out", "", "base directory holding the bucket directories")
	fs.StringVar(&prefix, "prefix", "", "bucket directory prefix (<prefix>-<bucket>)")
	fs.StringVar(&filename, "filename", "", "file name written inside each bucket directory")
	fs.StringVar(&format, "format", "", "output format (png, jpeg, webp, bmp, tiff); inferred from -filename when empty")
	fs.StringVar(&filter, "filter", "", "interpolation filter (nearest, bilinear, bicubic, mitchell, lanczos)")
	fs.StringVar(&backend, "backend", "", "resampling backend (nfnt, xdraw, native)")
	fs.IntVar(&workers, "workers", 0, "buckets generated concurrently")
	fs.BoolVar(&verbose, "v", false, "log every bucket to stderr")
	if err := fs.Parse(args); err != nil {
		return command{}, err
	}

	cfg, err := config.Parse(path)
	if err != nil {
		return command{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "source":
			cfg.Source = source
		case "out":
			cfg.BasePath = out
		case "prefix":
			cfg.Prefix = prefix
		case "filename":
			cfg.Filename = filename
		case "format":
			cfg.Format = format
		case "filter":
			cfg.Filter = filter
		case "backend":
			cfg.Backend = backend
		case "workers":
			cfg.Workers = workers
		}
	})

	if err := cfg.Validate(); err != nil {
		return command{}, err
	}

	return command{cfg: cfg, verbose: verbose}, nil
}

// run generates every configured bucket and prints the report to out. It
// returns an error when the batch cannot start or any bucket failed.
func run(ctx context.Context, cmd command, out, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil || !cmd.verbose {
		errOut = io.Discard
	}

	opts, err := cmd.cfg.GeneratorOptions(log.New(errOut, "", 0))
	if err != nil {
		return err
	}
	gen, err := iconset.New(opts)
	if err != nil {
		return err
	}

	report, err := gen.GenerateFile(ctx, cmd.cfg.Source, iconset.Targets(cmd.cfg.Targets), cmd.cfg.Layout().Destination())
	if err != nil {
		return err
	}

	if err := report.Print(out); err != nil {
		return errors.Wrap(err, "print report")
	}

	return report.Err()
}
