// Package renderer turns analysis results into markdown reports. Reports are
// plain markdown strings; callers decide whether to print them raw or render
// them for the terminal.
package renderer

import (
	"fmt"
	"math"
)

// num formats a float with two decimals, or a dash when the value is not
// defined (indicator windows that have not filled yet).
func num(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}
