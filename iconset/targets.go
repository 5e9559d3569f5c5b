package iconset

import (
	"sort"

	"github.com/nvr-ai/go-iconset/images"
	"github.com/pkg/errors"
)

// Targets maps a bucket id to the square output size in pixels.
type Targets map[string]int

// AndroidLauncher returns the launcher icon buckets for every Android density:
// ldpi 36, mdpi 48, hdpi 72, xhdpi 96, xxhdpi 144 and xxxhdpi 192.
func AndroidLauncher() Targets {
	return Targets(images.LauncherSizes(images.LauncherBaseline))
}

// Buckets returns the bucket ids in sorted order.
func (t Targets) Buckets() []string {
	buckets := make([]string, 0, len(t))
	for b := range t {
		buckets = append(buckets, b)
	}
	sort.Strings(buckets)
	return buckets
}

// Validate checks there is at least one bucket and every bucket has a
// non-empty id and a positive size.
func (t Targets) Validate() error {
	if len(t) == 0 {
		return ErrEmptyTargets
	}
	for _, b := range t.Buckets() {
		if b == "" {
			return errors.Wrap(ErrInvalidTarget, "empty bucket id")
		}
		if size := t[b]; size <= 0 {
			return errors.Wrapf(ErrInvalidTarget, "bucket %s: size %d", b, size)
		}
	}
	return nil
}
