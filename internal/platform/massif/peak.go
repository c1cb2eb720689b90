package massif

import (
	"regexp"
	"strconv"
)

var peakPattern = regexp.MustCompile(`peak:\s+(\d+)`)

// PeakBytes extracts the peak memory figure from a rendered ms_print report.
// The first "peak: <digits>" match wins. A report with no peak marker yields
// 0 rather than an error, so a failed or partial profiler run degrades to a
// zero measurement instead of halting the comparison.
func PeakBytes(report string) int64 {
	m := peakPattern.FindStringSubmatch(report)
	if m == nil {
		return 0
	}

	peak, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0
	}
	return peak
}

// PeakBytes implements the extraction half of the profiler contract for
// ms_print reports.
func (r *Runner) PeakBytes(report string) int64 {
	return PeakBytes(report)
}
