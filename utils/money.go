package utils

import "fmt"

// FormatCentavos renders an exact centavo amount with two decimals for
// display. Internal arithmetic never touches floats.
func FormatCentavos(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
