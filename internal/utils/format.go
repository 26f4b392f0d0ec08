// Package utils provides ambient helpers shared across the cdc packages:
// the byte-unit formatter, the application logger constructor, and version
// retrieval.
package utils

// Unit labels reported by HumanReadableSize.
const (
	// KilobyteUnitLabel labels kilobyte-scaled values and raw byte counts.
	KilobyteUnitLabel = "Kb"
	// MegabyteUnitLabel labels megabyte-scaled values.
	MegabyteUnitLabel = "Mb"
	// GigabyteUnitLabel labels gigabyte-scaled values.
	GigabyteUnitLabel = "Gb"
)

const (
	rawByteRangeUpperBound  = 999
	kilobyteRangeUpperBound = 1_048_575
	megabyteRangeUpperBound = 1_073_741_823

	kilobyteDivisor = 1024
	megabyteDivisor = 1024 * 1024
	gigabyteDivisor = 1024 * 1024 * 1024
)

// HumanReadableSize converts a byte count into a (value, unit label) pair.
// Counts up to 999 are returned unscaled yet still labeled "Kb"; that label
// is historical output the tool keeps reproducing.
func HumanReadableSize(byteCount uint64) (float64, string) {
	switch {
	case byteCount <= rawByteRangeUpperBound:
		return float64(byteCount), KilobyteUnitLabel
	case byteCount <= kilobyteRangeUpperBound:
		return float64(byteCount) / kilobyteDivisor, KilobyteUnitLabel
	case byteCount <= megabyteRangeUpperBound:
		return float64(byteCount) / megabyteDivisor, MegabyteUnitLabel
	default:
		return float64(byteCount) / gigabyteDivisor, GigabyteUnitLabel
	}
}
