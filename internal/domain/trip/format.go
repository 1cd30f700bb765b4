package trip

import "fmt"

// FormatDuration renders seconds as "M min", "H hr" or "H hr M min",
// omitting the zero part.
func FormatDuration(seconds int) string {
	hours := seconds / 3600
	mins := (seconds % 3600) / 60

	if hours == 0 {
		return fmt.Sprintf("%d min", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%d hr", hours)
	}
	return fmt.Sprintf("%d hr %d min", hours, mins)
}

// FormatDistance renders meters as "N m" below one kilometer and one-decimal
// "X.X km" from there on.
func FormatDistance(meters int) string {
	if meters >= 1000 {
		return fmt.Sprintf("%.1f km", float64(meters)/1000)
	}
	return fmt.Sprintf("%d m", meters)
}
