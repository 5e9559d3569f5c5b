package iconset

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
)

// Result is the outcome of one bucket.
type Result struct {
	Bucket string `json:"bucket"`
	// Size is the requested square size in pixels.
	Size int `json:"size"`
	// Path is the resolved destination.
	Path string `json:"path"`
	// Bytes is the size of the written file.
	Bytes int `json:"bytes,omitempty"`
	// Checksum is the hex MD5 of the written file.
	Checksum string        `json:"checksum,omitempty"`
	Duration time.Duration `json:"duration"`
	// Err is a *BucketWriteError when the bucket failed, nil otherwise.
	Err error `json:"-"`
}

// OK reports whether the artifact was written.
func (r Result) OK() bool { return r.Err == nil }

// Report holds the outcome of every requested bucket.
type Report struct {
	Results map[string]Result `json:"results"`
	order   []string
}

// newReport expects results sorted by bucket.
func newReport(results []Result) *Report {
	r := &Report{
		Results: make(map[string]Result, len(results)),
		order:   make([]string, 0, len(results)),
	}
	for _, res := range results {
		r.Results[res.Bucket] = res
		r.order = append(r.order, res.Bucket)
	}
	return r
}

// Buckets returns every reported bucket in sorted order.
func (r *Report) Buckets() []string {
	return append([]string(nil), r.order...)
}

// Succeeded returns the successful results in bucket order.
func (r *Report) Succeeded() []Result {
	return r.filter(true)
}

// Failed returns the failed results in bucket order.
func (r *Report) Failed() []Result {
	return r.filter(false)
}

func (r *Report) filter(ok bool) []Result {
	var out []Result
	for _, b := range r.order {
		if res := r.Results[b]; res.OK() == ok {
			out = append(out, res)
		}
	}
	return out
}

// OK reports whether every bucket succeeded.
func (r *Report) OK() bool {
	return len(r.Failed()) == 0
}

// Err summarizes the failures, wrapping the first failed bucket's error so
// errors.As can reach the *BucketWriteError. It returns nil when every bucket
// succeeded.
func (r *Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	return errors.Wrapf(failed[0].Err, "%d of %d buckets failed", len(failed), len(r.order))
}

// Print writes one status line per bucket followed by a summary.
func (r *Report) Print(w io.Writer) error {
	for _, b := range r.order {
		res := r.Results[b]
		var err error
		if res.OK() {
			_, err = fmt.Fprintf(w, "✅ %s (%dx%dpx) %s\n", res.Bucket, res.Size, res.Size, res.Path)
		} else {
			_, err = fmt.Fprintf(w, "⚠️  %s (%dx%dpx) failed: %v\n", res.Bucket, res.Size, res.Size, res.Err)
		}
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n✨ %d/%d icons generated\n", len(r.Succeeded()), len(r.order))
	return err
}
