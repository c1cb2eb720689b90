// Package report renders the comparison output: measured figures plus the
// static guidance and commentary blocks.
package report

import "fmt"

var units = []string{"B", "KB", "MB", "GB"}

// FormatBytes renders a byte count as a human-readable magnitude with two
// decimal places. Units escalate B through TB, dividing by 1024 at each
// step; TB is the ceiling, so anything past it stays in TB.
func FormatBytes(n int64) string {
	v := float64(n)
	for _, unit := range units {
		if v < 1024.0 {
			return fmt.Sprintf("%.2f %s", v, unit)
		}
		v /= 1024.0
	}
	return fmt.Sprintf("%.2f TB", v)
}
