// Package display converts density-independent pixels (dip) to device pixels.
package display

import (
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Environment variable read by FromEnv.
const EnvVar = "SUPPORT_DENSITY"

// Baseline density: one dip is one pixel on a 160 dpi screen.
const BaselineDPI = 160

type Metrics struct {
	// Scale factor from dip to pixels (1 at 160 dpi, 2 at 320 dpi).
	Density float64
}

// Default metrics, density 1.
var Default = Metrics{Density: 1}

func ForDPI(dpi int) Metrics {
	return Metrics{Density: float64(dpi) / BaselineDPI}
}

// Metrics configured through SUPPORT_DENSITY, Default when unset.
func FromEnv() (Metrics, error) {
	raw := strings.TrimSpace(os.Getenv(EnvVar))
	if raw == "" {
		return Default, nil
	}
	density, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Default, errors.Wrapf(err, "%s", EnvVar)
	}
	if !(density > 0) {
		return Default, errors.Errorf("%s: density must be positive, got %v", EnvVar, density)
	}
	return Metrics{Density: density}, nil
}

// Dimension converts dip to a fractional pixel count.
func Dimension(m Metrics, dip float64) float64 {
	return dip * m.Density
}

// DimensionPixelSize converts dip to a whole pixel count for use as a size.
// The result is rounded half away from zero, and a non-zero dip never
// collapses to zero pixels.
func DimensionPixelSize(m Metrics, dip float64) int {
	px := int(math.Round(Dimension(m, dip)))
	switch {
	case px != 0 || dip == 0:
		return px
	case dip > 0:
		return 1
	default:
		return -1
	}
}

// DimensionPixelOffset converts dip to a whole pixel count for use as an
// offset, truncating toward zero.
func DimensionPixelOffset(m Metrics, dip float64) int {
	return int(Dimension(m, dip))
}
