package iconset

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyTargets is returned when Generate is called without buckets.
	ErrEmptyTargets = errors.New("no targets to generate")
	// ErrInvalidTarget is returned when a bucket has an empty id or a
	// non-positive size.
	ErrInvalidTarget = errors.New("invalid target")
	// ErrNilDestination is returned when no destination resolver is given.
	ErrNilDestination = errors.New("destination is nil")
)

// SourceLoadError reports that the source bitmap could not be loaded. It is
// fatal for the whole batch: no artifact is written.
type SourceLoadError struct {
	// Path is the source file, empty for in-memory sources.
	Path string
	Err  error
}

func (e *SourceLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load source: %v", e.Err)
	}
	return fmt.Sprintf("load source %s: %v", e.Path, e.Err)
}

func (e *SourceLoadError) Unwrap() error { return e.Err }

// Stage names the step of a bucket that failed.
type Stage string

// Stage constants
const (
	// StageResolve marks a destination resolver that panicked.
	StageResolve  Stage = "resolve"
	StageResample Stage = "resample"
	StageEncode   Stage = "encode"
	StageWrite    Stage = "write"
	// StageCanceled marks buckets skipped because the context was done.
	StageCanceled Stage = "canceled"
)

// BucketWriteError reports that one bucket could not be produced. Sibling
// buckets are unaffected.
type BucketWriteError struct {
	Bucket string
	Path   string
	Stage  Stage
	Err    error
}

func (e *BucketWriteError) Error() string {
	return fmt.Sprintf("bucket %s: %s %s: %v", e.Bucket, e.Stage, e.Path, e.Err)
}

func (e *BucketWriteError) Unwrap() error { return e.Err }
