package fitcalc

// Lifestyle advice that does not depend on the profile.
const (
	SleepRecommendation = "7–9 hours per night"
	WalkingGoal         = "10,000 steps (~8 km)"
)

var (
	muscleGainWorkouts = [...]string{
		"Progressive overload strength training 4-5 times per week",
		"Focus on compound exercises (squats, deadlifts, bench press)",
		"Rest 1-2 minutes between sets",
		"Aim for 8-12 reps per set",
	}
	weightLossWorkouts = [...]string{
		"High-intensity interval training (HIIT) 3-4 times per week",
		"Strength training 2-3 times per week",
		"Cardio sessions 30-45 minutes",
		"Active recovery days with light walking",
	}
	maintenanceWorkouts = [...]string{
		"Mixed cardio and strength training 3-4 times per week",
		"Bodyweight exercises",
		"Flexibility and mobility work",
		"Regular walking or light cardio",
	}
)

// SuggestWorkouts returns the four workout suggestions for goal, in order.
// The slice is freshly allocated, so callers may modify it.
func SuggestWorkouts(goal FitnessGoal) []string {
	var src [4]string
	switch goal.Resolve() {
	case GoalMuscleGain:
		src = muscleGainWorkouts
	case GoalWeightLoss:
		src = weightLossWorkouts
	default:
		src = maintenanceWorkouts
	}
	out := make([]string, len(src))
	copy(out, src[:])
	return out
}
