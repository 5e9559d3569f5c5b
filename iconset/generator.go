// Package iconset generates one resampled bitmap per output bucket (for
// example, one launcher icon per Android screen density) from a single source
// image. Every bucket is attempted and reported independently: a failing
// bucket never stops its siblings.
package iconset

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/nvr-ai/go-iconset/images"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultFileMode is the permission used for written artifacts.
const DefaultFileMode os.FileMode = 0o644

// Options configures a Generator. The zero value resamples with Lanczos,
// infers the output format from each destination's extension and processes
// buckets sequentially.
type Options struct {
	// Resampler scales the source. Nil selects images.DefaultBackend with
	// images.DefaultFilter.
	Resampler images.Resampler
	// Format forces the output format. Empty infers it from the destination
	// extension and falls back to PNG.
	Format images.ImageFormat
	// Encode tunes lossy encoders.
	Encode images.EncodeOptions
	// Workers is the number of buckets processed concurrently. Values below
	// two process buckets one at a time in sorted order.
	Workers int
	// FileMode is the permission of written files. Zero means DefaultFileMode.
	FileMode os.FileMode
	// Logger receives one status line per bucket. Nil discards.
	Logger *log.Logger
}

// Generator produces multi-resolution icon sets. It holds no per-run state
// and is safe for concurrent use.
type Generator struct {
	resampler images.Resampler
	format    images.ImageFormat
	encode    images.EncodeOptions
	workers   int
	fileMode  os.FileMode
	logger    *log.Logger
}

// New creates a Generator from opts.
//
// Arguments:
//   - opts: The generator configuration.
//
// Returns:
//   - *Generator: The configured generator.
//   - error: An error if the default resampler cannot be built.
//
// @example
// gen, err := iconset.New(iconset.Options{Workers: 4})
func New(opts Options) (*Generator, error) {
	g := &Generator{
		resampler: opts.Resampler,
		format:    opts.Format,
		encode:    opts.Encode,
		workers:   opts.Workers,
		fileMode:  opts.FileMode,
		logger:    opts.Logger,
	}

	if g.resampler == nil {
		r, err := images.NewResampler(images.DefaultBackend, images.DefaultFilter)
		if err != nil {
			return nil, errors.Wrap(err, "default resampler")
		}
		g.resampler = r
	}
	if g.fileMode == 0 {
		g.fileMode = DefaultFileMode
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard, "", 0)
	}

	return g, nil
}

// GenerateFile loads the source at path and generates every target from it.
// A source that cannot be read or decoded yields a *SourceLoadError and no
// artifact is written.
func (g *Generator) GenerateFile(ctx context.Context, path string, targets Targets, dest Destination) (*Report, error) {
	if err := validate(targets, dest); err != nil {
		return nil, err
	}

	src, err := images.LoadSource(path)
	if err != nil {
		g.logger.Printf("❌ source %s: %v", path, err)
		return nil, &SourceLoadError{Path: path, Err: err}
	}

	return g.Generate(ctx, src, targets, dest)
}

// Generate resamples src to every target size and writes each result to
// dest(bucket), overwriting existing files. Missing parent directories are
// not created.
//
// The returned error is non-nil only when the batch cannot start: an empty
// source (*SourceLoadError), invalid targets or a nil destination. Per-bucket
// failures are reported in the Report as *BucketWriteError values.
//
// Arguments:
//   - ctx: Cancels buckets that have not started yet.
//   - src: The read-only source bitmap.
//   - targets: Bucket ids mapped to square sizes.
//   - dest: Resolves a bucket id to its output path.
//
// Returns:
//   - *Report: One Result per bucket.
//   - error: A batch-level validation or source error.
func (g *Generator) Generate(ctx context.Context, src *images.SourceImage, targets Targets, dest Destination) (*Report, error) {
	if src == nil || src.Image == nil || src.Image.Bounds().Empty() {
		var path string
		if src != nil {
			path = src.Path
		}
		return nil, &SourceLoadError{Path: path, Err: errors.New("source image is empty")}
	}
	if err := validate(targets, dest); err != nil {
		return nil, err
	}

	buckets := targets.Buckets()
	results := make([]Result, len(buckets))

	g.logger.Printf("🎨 generating %d icons from %dx%d source", len(buckets), src.Width, src.Height)

	if g.workers < 2 {
		for i, b := range buckets {
			results[i] = g.generateBucket(ctx, src, b, targets[b], dest)
		}
	} else {
		var group errgroup.Group
		group.SetLimit(g.workers)
		for i, b := range buckets {
			i, b := i, b
			group.Go(func() error {
				results[i] = g.generateBucket(ctx, src, b, targets[b], dest)
				return nil
			})
		}
		_ = group.Wait()
	}

	report := newReport(results)
	g.logger.Printf("✨ %d/%d icons generated", len(report.Succeeded()), len(results))

	return report, nil
}

func validate(targets Targets, dest Destination) error {
	if err := targets.Validate(); err != nil {
		return err
	}
	if dest == nil {
		return ErrNilDestination
	}
	return nil
}

// generateBucket produces a single artifact. Every failure, including a
// panic inside the destination resolver, encoder or resampler, is captured
// in the Result.
func (g *Generator) generateBucket(ctx context.Context, src *images.SourceImage, bucket string, size int, dest Destination) (res Result) {
	res = Result{Bucket: bucket, Size: size}
	stage := StageResolve
	start := time.Now()
	var path string

	fail := func(err error) {
		res.Err = &BucketWriteError{Bucket: bucket, Path: path, Stage: stage, Err: err}
		g.logger.Printf("⚠️  %s (%dx%dpx): %v", bucket, size, size, res.Err)
	}

	defer func() {
		if r := recover(); r != nil {
			fail(errors.Errorf("panic: %v", r))
		}
		res.Duration = time.Since(start)
	}()

	path = dest(bucket)
	res.Path = path

	stage = StageCanceled
	if err := ctx.Err(); err != nil {
		fail(err)
		return res
	}

	stage = StageResample
	img, err := g.resampler.Resample(src.Image, size, size)
	if err != nil {
		fail(err)
		return res
	}
	if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
		fail(errors.Errorf("resampled to %dx%d, want %dx%d", b.Dx(), b.Dy(), size, size))
		return res
	}

	stage = StageEncode
	format, err := g.formatFor(path)
	if err != nil {
		fail(err)
		return res
	}
	var buf bytes.Buffer
	if err := images.Encode(&buf, img, format, g.encode); err != nil {
		fail(err)
		return res
	}

	stage = StageWrite
	if path == "" {
		fail(errors.New("empty destination path"))
		return res
	}
	if err := os.WriteFile(path, buf.Bytes(), g.fileMode); err != nil {
		fail(err)
		return res
	}

	res.Bytes = buf.Len()
	res.Checksum = images.ChecksumBytes(buf.Bytes())
	g.logger.Printf("✅ %s (%dx%dpx) %s", bucket, size, size, path)

	return res
}

// formatFor returns the configured format, or the one implied by path.
func (g *Generator) formatFor(path string) (images.ImageFormat, error) {
	if g.format != "" {
		return g.format, nil
	}
	ext := filepath.Ext(path)
	if ext == "" {
		return images.FormatPNG, nil
	}
	return images.ParseFormat(ext)
}
