package models

// Fixed vocabularies for select-style fields. These mirror the values the
// frontend renders in its dropdowns, so changing one here is a breaking change.
var (
	Months = []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}

	TravelerTypes = []string{"Solo", "Couple", "Family", "Group"}

	ComfortLevels = []string{"Simple", "Comfortable", "Premium"}

	SafetyLevels = []string{"Low", "Moderate", "High"}

	CostLevels = []string{"Cheap", "Moderate", "Expensive"}

	// 16-point compass rose used for both wind and swell directions.
	WindDirections = []string{
		"N", "N-NE", "NE", "E-NE", "E", "E-SE", "SE", "S-SE",
		"S", "S-SW", "SW", "W-SW", "W", "W-NW", "NW", "N-NW",
	}

	SurfLevels = []string{"Beginner", "Intermediate", "Advanced", "Pro"}

	Tides = []string{"Low", "Mid", "High"}

	WaveDirections = []string{"Left", "Right", "Left and right"}

	BreakTypes = []string{"Beach break", "Reef break", "Point break", "River-mouth", "Slab"}

	CrowdLevels = []string{"Low", "Medium", "High", "Very High"}
)

// IsChoice reports whether value is one of the allowed choices.
// The empty string is always accepted: every choice field is optional.
func IsChoice(value string, choices []string) bool {
	if value == "" {
		return true
	}
	for _, c := range choices {
		if c == value {
			return true
		}
	}
	return false
}

// AreChoices reports whether every element of values is an allowed choice.
func AreChoices(values []string, choices []string) bool {
	for _, v := range values {
		if v == "" || !IsChoice(v, choices) {
			return false
		}
	}
	return true
}
