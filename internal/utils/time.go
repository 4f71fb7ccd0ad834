package utils

import "time"

const layoutFecha = "02/01/2006 15:04"

// NowFecha returns "now" in the display format pagos carry.
// Set once at creation, never recomputed.
func NowFecha() string {
	return time.Now().Format(layoutFecha)
}
