// Package config loads the settings of an icon generation run from a YAML
// file and ICONSET_* environment variables.
package config

import (
	"bytes"
	"io"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/nvr-ai/go-iconset/iconset"
	"github.com/nvr-ai/go-iconset/images"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config describes one generation run. Precedence, lowest first: Default,
// YAML file, environment, command-line flags.
type Config struct {
	// Source is the bitmap every bucket is resampled from.
	Source string `json:"source" yaml:"source" env:"ICONSET_SOURCE"`
	// BasePath is the directory holding the per-bucket directories.
	BasePath string `json:"basePath" yaml:"basePath" env:"ICONSET_BASE_PATH"`
	// Prefix names bucket directories as <Prefix>-<bucket>.
	Prefix string `json:"prefix" yaml:"prefix" env:"ICONSET_PREFIX"`
	// Filename is the artifact name inside each bucket directory.
	Filename string `json:"filename" yaml:"filename" env:"ICONSET_FILENAME"`
	// Format forces the output format. Empty infers it from Filename.
	Format string `json:"format" yaml:"format" env:"ICONSET_FORMAT"`
	// Filter is the interpolation filter name.
	Filter string `json:"filter" yaml:"filter" env:"ICONSET_FILTER"`
	// Backend is the resampling implementation name.
	Backend string `json:"backend" yaml:"backend" env:"ICONSET_BACKEND"`
	// Workers is the number of buckets generated concurrently.
	Workers int `json:"workers" yaml:"workers" env:"ICONSET_WORKERS"`
	// Quality is the JPEG/WebP quality.
	Quality int `json:"quality" yaml:"quality" env:"ICONSET_QUALITY"`
	// Lossless selects lossless WebP.
	Lossless bool `json:"lossless" yaml:"lossless" env:"ICONSET_LOSSLESS"`
	// Targets maps bucket ids to square sizes in pixels.
	Targets map[string]int `json:"targets" yaml:"targets"`
}

// Default returns the Android launcher icon configuration.
func Default() Config {
	return Config{
		Source:   "public/icon.png",
		BasePath: "android/app/src/main/res",
		Prefix:   "mipmap",
		Filename: "ic_launcher_foreground.png",
		Filter:   images.DefaultFilter.String(),
		Backend:  string(images.DefaultBackend),
		Workers:  1,
		Quality:  images.DefaultQuality,
		Targets:  iconset.AndroidLauncher(),
	}
}

// Load builds a Config from Default, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
//
// Arguments:
//   - path: Optional YAML file.
//
// Returns:
//   - Config: The merged configuration.
//   - error: An error if the file or environment cannot be parsed, or the
//     result is invalid.
func Load(path string) (Config, error) {
	cfg, err := Parse(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse is Load without validation, for callers that apply further
// overrides (such as flags) before validating.
func Parse(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
		if err := cfg.decodeYAML(data); err != nil {
			return Config{}, errors.Wrapf(err, "parse config %s", path)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}

	return cfg, nil
}

// decodeYAML overlays data on cfg. A targets table in the file replaces the
// default table rather than merging with it. Unknown keys are rejected.
func (c *Config) decodeYAML(data []byte) error {
	var file Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	overlay(c, &file, doc)

	return nil
}

// overlay copies the keys present in doc from file into c, so an explicit
// zero value in the file (e.g. `lossless: false`) still wins.
func overlay(c, file *Config, doc map[string]any) {
	set := func(key string, apply func()) {
		if _, ok := doc[key]; ok {
			apply()
		}
	}
	set("source", func() { c.Source = file.Source })
	set("basePath", func() { c.BasePath = file.BasePath })
	set("prefix", func() { c.Prefix = file.Prefix })
	set("filename", func() { c.Filename = file.Filename })
	set("format", func() { c.Format = file.Format })
	set("filter", func() { c.Filter = file.Filter })
	set("backend", func() { c.Backend = file.Backend })
	set("workers", func() { c.Workers = file.Workers })
	set("quality", func() { c.Quality = file.Quality })
	set("lossless", func() { c.Lossless = file.Lossless })
	set("targets", func() { c.Targets = file.Targets })
}

// Validate checks every field can be turned into generator settings.
func (c Config) Validate() error {
	if c.Source == "" {
		return errors.New("source is required")
	}
	if c.Filename == "" {
		return errors.New("filename is required")
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative: %d", c.Workers)
	}
	if c.Quality < 0 || c.Quality > 100 {
		return errors.Errorf("quality must be within [0, 100]: %d", c.Quality)
	}
	if _, err := c.ImageFormat(); err != nil {
		return err
	}
	if _, err := c.Resampler(); err != nil {
		return err
	}
	return errors.Wrap(iconset.Targets(c.Targets).Validate(), "targets")
}

// Layout returns the destination layout for the configured paths.
func (c Config) Layout() iconset.Layout {
	return iconset.Layout{Base: c.BasePath, Prefix: c.Prefix, Filename: c.Filename}
}

// ImageFormat returns the forced output format, or "" to infer it from the
// destination extension.
func (c Config) ImageFormat() (images.ImageFormat, error) {
	if c.Format == "" {
		return "", nil
	}
	return images.ParseFormat(c.Format)
}

// Resampler builds the configured backend and filter.
func (c Config) Resampler() (images.Resampler, error) {
	filter, err := images.ParseFilter(c.Filter)
	if err != nil {
		return nil, err
	}
	backend, err := images.ParseBackend(c.Backend)
	if err != nil {
		return nil, err
	}
	return images.NewResampler(backend, filter)
}

// GeneratorOptions translates the configuration into iconset.Options.
func (c Config) GeneratorOptions(logger *log.Logger) (iconset.Options, error) {
	resampler, err := c.Resampler()
	if err != nil {
		return iconset.Options{}, err
	}
	format, err := c.ImageFormat()
	if err != nil {
		return iconset.Options{}, err
	}

	return iconset.Options{
		Resampler: resampler,
		Format:    format,
		Encode:    images.EncodeOptions{Quality: c.Quality, Lossless: c.Lossless},
		Workers:   c.Workers,
		Logger:    logger,
	}, nil
}
