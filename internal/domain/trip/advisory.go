package trip

import "fmt"

// Advisory is a rule-derived suggestion triggered by total trip duration.
type Advisory struct {
	Category       string  `json:"category"`
	Title          string  `json:"title"`
	Reason         string  `json:"reason"`
	ThresholdHours float64 `json:"threshold_hours"`
}

// Advise derives break, fuel and rest advisories from the trip duration.
// Thresholds are cumulative: a longer trip keeps every advisory a shorter
// one would get. Pure and deterministic; output order follows threshold
// order.
func Advise(durationSeconds int) []Advisory {
	hours := float64(durationSeconds) / 3600
	var advisories []Advisory

	if hours >= 1.5 {
		advisories = append(advisories, Advisory{
			Category:       "restaurant",
			Title:          "Food Break Recommended",
			Reason:         fmt.Sprintf("Your journey is %s long. A food/tea break is advisable.", FormatDuration(durationSeconds)),
			ThresholdHours: 1.5,
		})
	}

	if hours >= 3 {
		advisories = append(advisories, Advisory{
			Category:       "gas_station",
			Title:          "Fuel Check Recommended",
			Reason:         "For journeys over 3 hours, checking fuel levels is strongly advised.",
			ThresholdHours: 3,
		})
	}

	if hours >= 5 {
		advisories = append(advisories,
			Advisory{
				Category:       "lodging",
				Title:          "Rest Stop / Hotel Suggested",
				Reason:         "Your journey exceeds 5 hours. Consider an overnight stop or rest point.",
				ThresholdHours: 5,
			},
			Advisory{
				Category:       "hospital",
				Title:          "Medical Facility Awareness",
				Reason:         "For very long journeys, it's wise to note hospitals along the route.",
				ThresholdHours: 5,
			},
		)
	}

	return advisories
}
