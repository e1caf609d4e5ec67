package daqmx

import "strings"

/* Decoding helpers for the driver's fixed-size output buffers. The driver
writes NUL terminated ANSI strings and flat float64 arrays; nothing here
touches the driver itself, so these are testable without hardware. */

// decodes a NUL terminated driver string from a fixed output buffer
func stringFromBuffer(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

// splits a comma separated driver name list, e.g. "Dev1, Dev2" into
// individual trimmed names. Returns nil for an empty list.
func splitNameList(list string) []string {
	list = strings.TrimSpace(list)
	if list == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return names
}

// A low/high value pair of a device range query, in the channel units
type Range struct {
	Min float64
	Max float64
}

// extracts the populated (low, high) pairs from a flat range query buffer.
// The driver leaves unused slots zeroed; a pair counts as populated while
// either element is non-zero, all other slots are skipped.
func rangePairs(values []float64) []Range {
	var ranges []Range
	for i := 0; i+1 < len(values); i += 2 {
		if values[i] == 0 && values[i+1] == 0 {
			continue
		}
		ranges = append(ranges, Range{Min: values[i], Max: values[i+1]})
	}
	return ranges
}
