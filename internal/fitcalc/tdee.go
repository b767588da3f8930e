package fitcalc

// ActivityLevel is how active the user is outside of resting metabolism.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightlyActive"
	ActivityModeratelyActive ActivityLevel = "moderatelyActive"
	ActivityVeryActive       ActivityLevel = "veryActive"
	ActivityExtremelyActive  ActivityLevel = "extremelyActive"
)

// activityMultipliers maps each activity level to its TDEE multiplier.
// This is the single source of truth for valid activity levels; validation
// goes through ActivityLevel.Valid, which reads it.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:        1.2,
	ActivityLightlyActive:    1.375,
	ActivityModeratelyActive: 1.55,
	ActivityVeryActive:       1.725,
	ActivityExtremelyActive:  1.9,
}

// ActivityLevels lists the activity levels from least to most active.
func ActivityLevels() []ActivityLevel {
	return []ActivityLevel{
		ActivitySedentary,
		ActivityLightlyActive,
		ActivityModeratelyActive,
		ActivityVeryActive,
		ActivityExtremelyActive,
	}
}

// Valid reports whether a has a known multiplier.
func (a ActivityLevel) Valid() bool {
	_, ok := activityMultipliers[a]
	return ok
}

// Multiplier returns the TDEE multiplier for a, or ok=false for an unknown level.
func (a ActivityLevel) Multiplier() (float64, bool) {
	m, ok := activityMultipliers[a]
	return m, ok
}

// ComputeTDEE scales bmr by the activity multiplier. An unknown level is an
// error, never a default multiplier.
func ComputeTDEE(bmr float64, level ActivityLevel) (float64, error) {
	mult, ok := level.Multiplier()
	if !ok {
		return 0, invalidInput("activityLevel", "must be one of: %s, got %q", joinValues(ActivityLevels()), level)
	}
	return bmr * mult, nil
}
