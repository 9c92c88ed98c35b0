// Package usage contains the pure functions deriving quota percentage, byte
// formatting, and color banding from raw usage counters. Billable bytes
// themselves are computed server-side; nothing here recomputes them.
package usage

import (
	"math"
	"strconv"
	"strings"
)

// CalculateUsagePercentage returns how much of quota the billable traffic
// consumed, as a value in [0,100]. A zero quota yields 0, and usage beyond
// the quota clamps to 100.
func CalculateUsagePercentage(billableUp, billableDown, quota uint64) float64 {
	if quota == 0 {
		return 0
	}
	used := float64(billableUp) + float64(billableDown)
	return math.Min(used/float64(quota)*100, 100)
}

var byteUnits = []string{"Bytes", "KB", "MB", "GB", "TB", "PB"}

// FormatBytes renders n with the largest fitting base-1024 unit, e.g.
// 1536 -> "1.5 KB". Zero is special-cased as "0 Bytes". Negative decimals
// are treated as zero; trailing zeros after the point are trimmed.
func FormatBytes(n uint64, decimals int) string {
	if n == 0 {
		return "0 Bytes"
	}
	if decimals < 0 {
		decimals = 0
	}

	i := int(math.Floor(math.Log(float64(n)) / math.Log(1024)))
	if i >= len(byteUnits) {
		i = len(byteUnits) - 1
	}

	value := float64(n) / math.Pow(1024, float64(i))
	s := strconv.FormatFloat(value, 'f', decimals, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s + " " + byteUnits[i]
}

// GBToBytes converts whole-or-fractional gigabytes to bytes.
func GBToBytes(gb float64) uint64 {
	return uint64(gb * 1024 * 1024 * 1024)
}

// BytesToGB converts bytes to gigabytes.
func BytesToGB(n uint64) float64 {
	return float64(n) / (1024 * 1024 * 1024)
}

// Color maps a usage percentage to one of four ordered bands:
// [0,50) green, [50,80) yellow, [80,95) orange, [95,100] red.
func Color(percentage float64) string {
	switch {
	case percentage < 50:
		return "green"
	case percentage < 80:
		return "yellow"
	case percentage < 95:
		return "orange"
	default:
		return "red"
	}
}

// ANSIColor returns the terminal escape code for the percentage's band.
func ANSIColor(percentage float64) string {
	switch Color(percentage) {
	case "green":
		return "\033[32m"
	case "yellow":
		return "\033[33m"
	case "orange":
		return "\033[38;5;208m"
	default:
		return "\033[31m"
	}
}
