package images

import (
	"fmt"
	"math"
	"sort"
)

// DensityType names an Android generalized density bucket (e.g. "xhdpi").
type DensityType string

// Defines the density buckets a launcher icon is shipped in.
const (
	DensityLDPI    DensityType = "ldpi"
	DensityMDPI    DensityType = "mdpi"
	DensityHDPI    DensityType = "hdpi"
	DensityXHDPI   DensityType = "xhdpi"
	DensityXXHDPI  DensityType = "xxhdpi"
	DensityXXXHDPI DensityType = "xxxhdpi"
)

// LauncherBaseline is the launcher icon size in pixels at mdpi (48dp).
const LauncherBaseline = 48

// Density describes one density bucket.
type Density struct {
	Name DensityType `json:"name"`
	// DPI is the nominal dots per inch of the bucket.
	DPI int `json:"dpi"`
	// Legacy marks buckets that modern devices no longer ship.
	Legacy bool `json:"legacy"`
}

// Scale returns the bucket's multiplier relative to mdpi (160 dpi).
// O(1) complexity.
func (d Density) Scale() float64 {
	if d.DPI <= 0 {
		return 0
	}
	return float64(d.DPI) / 160.0
}

// Pixels converts a size in density-independent pixels to device pixels for
// this bucket, rounding to the nearest pixel.
func (d Density) Pixels(dp int) int {
	return int(math.Round(float64(dp) * d.Scale()))
}

// String returns a human-readable summary of the density.
func (d Density) String() string {
	return fmt.Sprintf("%s (%d dpi, %.2fx)", d.Name, d.DPI, d.Scale())
}

// densities is keyed by DensityType for lookups.
var densities = map[DensityType]Density{
	DensityLDPI:    {Name: DensityLDPI, DPI: 120, Legacy: true},
	DensityMDPI:    {Name: DensityMDPI, DPI: 160},
	DensityHDPI:    {Name: DensityHDPI, DPI: 240},
	DensityXHDPI:   {Name: DensityXHDPI, DPI: 320},
	DensityXXHDPI:  {Name: DensityXXHDPI, DPI: 480},
	DensityXXXHDPI: {Name: DensityXXXHDPI, DPI: 640},
}

// GetAllDensities returns every density bucket ordered by ascending DPI.
func GetAllDensities() []Density {
	all := make([]Density, 0, len(densities))
	for _, d := range densities {
		all = append(all, d)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].DPI < all[j].DPI })
	return all
}

// GetDensityByType retrieves a density by its name.
// It returns the Density and true if found, otherwise an empty Density and false.
func GetDensityByType(t DensityType) (Density, bool) {
	d, ok := densities[t]
	return d, ok
}

// LauncherSizes maps every density bucket name to its square icon size for
// the given baseline in dp. A baseline of LauncherBaseline yields
// ldpi 36, mdpi 48, hdpi 72, xhdpi 96, xxhdpi 144 and xxxhdpi 192.
func LauncherSizes(baseline int) map[string]int {
	sizes := make(map[string]int, len(densities))
	for name, d := range densities {
		sizes[string(name)] = d.Pixels(baseline)
	}
	return sizes
}
