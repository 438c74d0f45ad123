package cli

import "fmt"

// formatPrice renders a price as US dollars.
func formatPrice(n float64) string {
	return fmt.Sprintf("$%.2f", n)
}

// truncate обрезает длинные строки для табличного вывода
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
