package iconset

import (
	"path/filepath"
)

// Destination resolves a bucket id to the file its artifact is written to.
type Destination func(bucket string) string

// Layout is the directory-per-bucket convention used by Android resource
// trees: <Base>/<Prefix>-<bucket>/<Filename>.
type Layout struct {
	// Base is the resource root, e.g. "android/app/src/main/res".
	Base string `json:"base" yaml:"base"`
	// Prefix is the directory prefix, e.g. "mipmap".
	Prefix string `json:"prefix" yaml:"prefix"`
	// Filename is the artifact name inside each bucket directory.
	Filename string `json:"filename" yaml:"filename"`
}

// Path returns the artifact path for bucket. An empty Prefix drops the dash.
func (l Layout) Path(bucket string) string {
	dir := bucket
	if l.Prefix != "" {
		dir = l.Prefix + "-" + bucket
	}
	return filepath.Join(l.Base, dir, l.Filename)
}

// Destination adapts the layout to a Destination.
func (l Layout) Destination() Destination {
	return l.Path
}

// FixedPaths returns a Destination backed by an explicit table. Buckets
// missing from the table resolve to an empty path, which fails to write.
func FixedPaths(paths map[string]string) Destination {
	return func(bucket string) string {
		return paths[bucket]
	}
}
